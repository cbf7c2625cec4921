package game

import (
	"sync"
	"time"
)

// Scheduler arms a single delayed task for the automated side's reply.
// At most one task is pending at a time: arming a new one supersedes
// the old, and Cancel disarms whatever is pending. A task that has
// already started racing its cancellation re-checks that it is still
// the latest before running, so a stale timer can never fire against a
// board that moved on without it.
type Scheduler struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewScheduler returns a scheduler with nothing armed.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule arms fn to run after d, replacing any pending task. fn runs
// on the timer's goroutine; callers that need single-threaded state
// access should have fn signal a channel instead of mutating directly.
func (s *Scheduler) Schedule(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		if s.gen != gen {
			s.mu.Unlock()
			return
		}
		s.timer = nil
		s.mu.Unlock()
		fn()
	})
}

// Cancel disarms any pending task. It is idempotent and safe to call
// whether or not anything is armed.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Pending reports whether a task is currently armed.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
