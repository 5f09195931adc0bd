package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeFiresInDeadlineOrder(t *testing.T) {
	s := NewFake()

	var fired []string
	a := s.NewTimer(func() { fired = append(fired, "a") })
	b := s.NewTimer(func() { fired = append(fired, "b") })

	b.Reset(10 * time.Millisecond)
	a.Reset(30 * time.Millisecond)

	s.Advance(50 * time.Millisecond)

	assert.Equal(t, []string{"b", "a"}, fired)
}

func TestFakeStopPreventsFire(t *testing.T) {
	s := NewFake()

	fired := false
	a := s.NewTimer(func() { fired = true })
	a.Reset(10 * time.Millisecond)
	a.Stop()

	s.Advance(time.Second)

	assert.False(t, fired)
}

func TestFakeResetReplacesDeadline(t *testing.T) {
	s := NewFake()

	count := 0
	a := s.NewTimer(func() { count++ })
	a.Reset(10 * time.Millisecond)
	a.Reset(100 * time.Millisecond)

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, 0, count, "first deadline should have been replaced")

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, count)
}

func TestFakeRearmWithinWindow(t *testing.T) {
	s := NewFake()

	var at []time.Duration
	start := s.Now()
	var tm Timer
	tm = s.NewTimer(func() {
		at = append(at, s.Now().Sub(start))
		if len(at) < 3 {
			tm.Reset(10 * time.Millisecond)
		}
	})
	tm.Reset(10 * time.Millisecond)

	s.Advance(100 * time.Millisecond)

	assert.Equal(t, []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
	}, at)
	assert.Equal(t, start.Add(100*time.Millisecond), s.Now())
}

func TestRealTimerFires(t *testing.T) {
	s := New()

	ch := make(chan struct{})
	tm := s.NewTimer(func() { close(ch) })
	tm.Reset(5 * time.Millisecond)

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestRealTimerStopBeforeArmIsSafe(t *testing.T) {
	s := New()
	tm := s.NewTimer(func() {})
	assert.NotPanics(t, func() { tm.Stop() })
}
