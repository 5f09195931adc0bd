package timer

import (
	"sort"
	"time"
)

// FakeScheduler is a deterministic Scheduler for tests. Time only moves when
// Advance is called, and due timers fire synchronously on the advancing
// goroutine, in deadline order.
type FakeScheduler struct {
	now    time.Time
	timers []*fakeTimer
}

// NewFake creates a FakeScheduler starting at an arbitrary fixed instant.
func NewFake() *FakeScheduler {
	return &FakeScheduler{now: time.Unix(1000, 0)}
}

func (s *FakeScheduler) NewTimer(f func()) Timer {
	t := &fakeTimer{sched: s, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *FakeScheduler) Now() time.Time {
	return s.now
}

// Advance moves the clock forward by d, firing every armed timer whose
// deadline falls inside the window. Timers re-armed by a firing callback are
// honored within the same window.
func (s *FakeScheduler) Advance(d time.Duration) {
	target := s.now.Add(d)
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.deadline
		t.armed = false
		t.f()
	}
	s.now = target
}

func (s *FakeScheduler) nextDue(target time.Time) *fakeTimer {
	due := make([]*fakeTimer, 0, len(s.timers))
	for _, t := range s.timers {
		if t.armed && !t.deadline.After(target) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool { return due[i].deadline.Before(due[j].deadline) })
	return due[0]
}

type fakeTimer struct {
	sched    *FakeScheduler
	f        func()
	deadline time.Time
	armed    bool
}

func (t *fakeTimer) Reset(d time.Duration) {
	t.deadline = t.sched.now.Add(d)
	t.armed = true
}

func (t *fakeTimer) Stop() {
	t.armed = false
}
