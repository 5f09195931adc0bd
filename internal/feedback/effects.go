package feedback

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/callebjorkell/big-button/internal/button"
)

// Confirm acknowledges a gesture on the strip. It returns immediately; the
// pattern runs on its own goroutine and yields to the next gesture.
func (l *LedController) Confirm(ev button.Event) {
	color := colorFor(ev)
	if color == 0 {
		return
	}

	go func() {
		switch ev {
		case button.Pressed:
			l.blip(color)
		case button.DoubleClick, button.ExtraLongPress2:
			l.flash(color)
		default:
			l.pulse(color)
		}
	}()
}

// blip is the shortest acknowledgment, a single brief light.
func (l *LedController) blip(color uint32) {
	done := l.interruptor.Interrupt()
	defer done()
	defer l.clear()

	if err := l.setColor(color); err != nil {
		log.Warn("Unable to set color: ", err)
		return
	}
	<-time.After(80 * time.Millisecond)
}

func (l *LedController) flash(color uint32) {
	done := l.interruptor.Interrupt()
	defer done()
	defer l.clear()

	log.Debugf("Flashing color %06x", color)
	for i := 0; i < 3; i++ {
		if l.interruptor.IsInterrupted() {
			return
		}
		l.setColor(color)
		<-time.After(100 * time.Millisecond)
		l.setColor(0)
		<-time.After(40 * time.Millisecond)
	}
}

// pulse ramps the color up and back down, one breath.
func (l *LedController) pulse(color uint32) {
	done := l.interruptor.Interrupt()
	defer done()
	defer l.clear()

	log.Debugf("Pulsing color %06x", color)
	if err := l.singleBreath(color); err != nil {
		log.Debug("Stopping pulse: ", err)
	}
}

func (l *LedController) singleBreath(color uint32) error {
	light := uint32(0)
	increase := true
	tick := time.NewTicker(5 * time.Millisecond)
	defer tick.Stop()
	for {
		if l.interruptor.IsInterrupted() {
			return fmt.Errorf("animation is interrupted")
		}

		c := withBrightness(color, light)
		if err := l.setColor(c); err != nil {
			return err
		}

		if increase {
			light++
			if light > 100 {
				increase = false
			}
		} else {
			if light == 0 {
				break
			}
			light--
		}

		<-tick.C
	}
	return nil
}
