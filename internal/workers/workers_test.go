// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// countingWorker records how many times Run was called and blocks until ctx
// is cancelled.
type countingWorker struct {
	runs atomic.Int32
}

func (w *countingWorker) Run(ctx context.Context) {
	w.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	ws := []*countingWorker{{}, {}, {}}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		NewWorkers(ws[0], ws[1], ws[2]).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		for _, w := range ws {
			if w.runs.Load() != 1 {
				return false
			}
		}
		return true
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	NewWorkers().Run(context.Background())
	(&Workers{}).Run(context.Background())
}

func TestWorkers_Run_WaitsForShortWorkers(t *testing.T) {
	var (
		mu    sync.Mutex
		order []int
	)
	worker := func(id int) Worker {
		return workerFunc(func(context.Context) {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, id)
		})
	}

	NewWorkers(worker(1), worker(2), worker(3)).Run(context.Background())

	assert.ElementsMatch(t, []int{1, 2, 3}, order)
}

type workerFunc func(ctx context.Context)

func (f workerFunc) Run(ctx context.Context) { f(ctx) }
