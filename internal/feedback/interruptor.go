package feedback

import (
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Queue shares the LEDs between concurrent animations. An animation that
// wants the strip calls Interrupt, which flags any running animation to bail
// out and then waits for the run lock. Long-running animations are expected
// to poll IsInterrupted and release the strip when someone is waiting.
type Queue struct {
	waiting       int
	runLock       sync.Mutex
	interruptLock sync.Mutex
}

type Unlocker func()

// Interrupt queues for the strip and waits for any current owner to yield.
// The returned Unlocker must be called when the animation is done.
func (i *Queue) Interrupt() Unlocker {
	i.interrupt()
	i.runLock.Lock()

	i.running()
	return func() {
		i.done()
	}
}

func (i *Queue) running() {
	i.interruptLock.Lock()
	defer i.interruptLock.Unlock()

	i.waiting--
}

func (i *Queue) interrupt() {
	i.interruptLock.Lock()
	defer i.interruptLock.Unlock()

	i.waiting++
}

func (i *Queue) IsInterrupted() bool {
	i.interruptLock.Lock()
	defer i.interruptLock.Unlock()

	return i.waiting != 0
}

func (i *Queue) done() {
	defer i.runLock.Unlock()

	if i.waiting < 0 {
		log.Warn(errors.New("number waiting in queue less than zero"))
	}
}
