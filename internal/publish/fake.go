package publish

import (
	"github.com/callebjorkell/big-button/internal/button"
)

// FakePublisher records published events for test assertions.
type FakePublisher struct {
	// Events contains all gestures that were published.
	Events []button.Event

	// PublishError, if set, is returned by Publish.
	PublishError error

	// Closed tracks if Close was called.
	Closed bool
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

func (f *FakePublisher) Publish(ev button.Event) error {
	if f.PublishError != nil {
		return f.PublishError
	}
	f.Events = append(f.Events, ev)
	return nil
}

func (f *FakePublisher) Close() error {
	f.Closed = true
	return nil
}
