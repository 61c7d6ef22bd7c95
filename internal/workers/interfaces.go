// Package workers runs the background jobs of the tabkeeper daemon.
// It defines the Worker interface and a Workers aggregate that starts
// every worker and waits for all of them to stop.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
