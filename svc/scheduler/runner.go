package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Status reports a job's current state.
type Status struct {
	Running bool
	NextRun time.Time
}

// runState guards a job against overlapping runs and tracks the next
// scheduled fire time for Status.
type runState struct {
	running atomic.Bool
	mu      sync.Mutex
	nextRun time.Time
}

// begin claims the run slot. Returns false when a run is already active.
func (s *runState) begin() bool {
	return s.running.CompareAndSwap(false, true)
}

func (s *runState) end() {
	s.running.Store(false)
}

func (s *runState) setNextRun(t time.Time) {
	s.mu.Lock()
	s.nextRun = t
	s.mu.Unlock()
}

func (s *runState) status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{Running: s.running.Load(), NextRun: s.nextRun}
}

// loop drives a job off its schedule until the context is cancelled. The
// job's own run guard handles overlap, so a slow run simply makes the next
// tick a no-op.
func loop(ctx context.Context, schedule Schedule, state *runState, run func(context.Context)) error {
	for {
		next := schedule.Next(time.Now())
		state.setNextRun(next)

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			run(ctx)
		}
	}
}
