package server

import "context"

// Server defines the lifecycle of the daemon.
type Server interface {
	// Run serves until ctx is cancelled or a stop signal arrives, then shuts
	// down gracefully. It returns early if the listener can not be opened.
	Run(ctx context.Context) error

	// Addr reports the address the server listens on once Run started it.
	Addr() string
}
