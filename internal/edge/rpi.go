//go:build pi

package edge

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

type pinSource struct {
	name string
	pin  gpio.PinIO
	stop chan struct{}
	done chan struct{}
}

// NewSource creates an edge source for the named GPIO pin. The pin is wired
// active low with the internal pull-up, so a pressed button reads low.
func NewSource(name string) Source {
	return &pinSource{name: name}
}

func (s *pinSource) Attach(onEdge func()) error {
	if s.pin != nil {
		return fmt.Errorf("pin %v is already attached", s.name)
	}
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("initialize periph: %w", err)
	}

	pin := gpioreg.ByName(s.name)
	if pin == nil {
		return fmt.Errorf("no GPIO pin named %v", s.name)
	}
	if err := pin.In(gpio.PullUp, gpio.BothEdges); err != nil {
		return fmt.Errorf("configure %v for edge detection: %w", s.name, err)
	}

	log.Infof("Watching %v for edges", s.name)
	s.pin = pin
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.watch(onEdge)

	return nil
}

func (s *pinSource) watch(onEdge func()) {
	defer close(s.done)
	for {
		select {
		case <-s.stop:
			return
		default:
		}
		// The timeout keeps the stop channel checked even on a silent line.
		if s.pin.WaitForEdge(time.Second) {
			onEdge()
		}
	}
}

func (s *pinSource) Detach() error {
	if s.pin == nil {
		return fmt.Errorf("pin %v is not attached", s.name)
	}
	close(s.stop)
	if err := s.pin.Halt(); err != nil {
		log.Warn("Unable to halt pin: ", err)
	}
	<-s.done
	s.pin = nil
	return nil
}

func (s *pinSource) Level() bool {
	return s.pin.Read() == gpio.Low
}
