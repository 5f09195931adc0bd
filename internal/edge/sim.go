//go:build !pi

package edge

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"
)

type simSource struct {
	mu      sync.Mutex
	level   bool
	sigs    chan os.Signal
	done    chan struct{}
	watched bool
}

// NewSource creates a simulated edge source. Each SIGHUP toggles the line, so
// a press/release pair can be produced with two `kill -HUP` invocations.
func NewSource(name string) Source {
	log.Infof("Simulating edges for %v: send SIGHUP to toggle the line", name)
	return &simSource{}
}

func (s *simSource) Attach(onEdge func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watched {
		return fmt.Errorf("simulated pin is already attached")
	}

	s.sigs = make(chan os.Signal, 1)
	s.done = make(chan struct{})
	signal.Notify(s.sigs, syscall.SIGHUP)
	s.watched = true

	go func() {
		defer close(s.done)
		for range s.sigs {
			s.mu.Lock()
			s.level = !s.level
			s.mu.Unlock()
			onEdge()
		}
	}()

	return nil
}

func (s *simSource) Detach() error {
	s.mu.Lock()
	if !s.watched {
		s.mu.Unlock()
		return fmt.Errorf("simulated pin is not attached")
	}
	s.watched = false
	sigs, done := s.sigs, s.done
	s.mu.Unlock()

	// Wait for the toggler without holding the lock; it takes the lock for
	// every level flip.
	signal.Stop(sigs)
	close(sigs)
	<-done
	return nil
}

func (s *simSource) Level() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}
