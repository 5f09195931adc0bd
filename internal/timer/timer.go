// Package timer wraps one-shot timer scheduling behind a small interface so
// that the gesture engine can be driven by a manual clock in tests.
package timer

import "time"

// Timer is a single one-shot timer. Reset arms it, or re-arms it if it is
// already armed, replacing the previous deadline. Stop disarms it. A timer
// whose callback is already running cannot be un-fired; callers are expected
// to guard against stale fires themselves.
type Timer interface {
	Reset(d time.Duration)
	Stop()
}

// Scheduler creates timers and tells the time. Callbacks run on the
// scheduler's own goroutines, never on the caller's.
type Scheduler interface {
	NewTimer(f func()) Timer
	Now() time.Time
}

type realScheduler struct{}

// New returns a Scheduler backed by the runtime timers and the wall clock.
func New() Scheduler {
	return realScheduler{}
}

func (realScheduler) NewTimer(f func()) Timer {
	return &realTimer{f: f}
}

func (realScheduler) Now() time.Time {
	return time.Now()
}

type realTimer struct {
	t *time.Timer
	f func()
}

func (r *realTimer) Reset(d time.Duration) {
	if r.t == nil {
		r.t = time.AfterFunc(d, r.f)
		return
	}
	r.t.Stop()
	r.t.Reset(d)
}

func (r *realTimer) Stop() {
	if r.t != nil {
		r.t.Stop()
	}
}
