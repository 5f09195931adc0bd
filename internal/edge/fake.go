package edge

import (
	"errors"
	"sync"
)

// Fake is an in-memory Source for tests. SetLevel drives the line directly
// and raises an edge for every call, so electrical bounce can be scripted as
// rapid SetLevel sequences.
type Fake struct {
	mu     sync.Mutex
	level  bool
	onEdge func()

	// AttachErr, if set, is returned by Attach.
	AttachErr error
	// Attached reports whether the fake currently has a callback registered.
	Attached bool
}

func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) Attach(onEdge func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.AttachErr != nil {
		return f.AttachErr
	}
	if f.Attached {
		return errors.New("already attached")
	}
	f.onEdge = onEdge
	f.Attached = true
	return nil
}

func (f *Fake) Detach() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.Attached {
		return errors.New("not attached")
	}
	f.onEdge = nil
	f.Attached = false
	return nil
}

func (f *Fake) Level() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.level
}

// SetLevel sets the instantaneous line level and raises a raw edge.
func (f *Fake) SetLevel(pressed bool) {
	f.mu.Lock()
	f.level = pressed
	onEdge := f.onEdge
	f.mu.Unlock()
	if onEdge != nil {
		onEdge()
	}
}
