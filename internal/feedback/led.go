// Package feedback acknowledges button gestures on the ws281x LED ring. Each
// gesture gets its own color and pattern so the user can tell which tier a
// hold has reached without looking at the display.
package feedback

import (
	log "github.com/sirupsen/logrus"

	"github.com/callebjorkell/big-button/internal/button"
)

const (
	brightness = 90
	ledCounts  = 24
)

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
}

// LedController owns the LED strip. Animations run on their own goroutines
// and yield to each other through the interruptor.
type LedController struct {
	ws          wsEngine
	interruptor Queue
}

func (l *LedController) setColor(color uint32) error {
	leds := l.ws.Leds(0)
	for i := range leds {
		leds[i] = color
	}
	return l.ws.Render()
}

func (l *LedController) clear() {
	if err := l.setColor(0); err != nil {
		log.Warn("Unable to clear LEDs: ", err)
	}
}

// Stop interrupts any running animation and blanks the strip.
func (l *LedController) Stop() {
	done := l.interruptor.Interrupt()
	defer done()
	l.clear()
}

// Close releases the LED hardware.
func (l *LedController) Close() {
	l.Stop()
	l.ws.Fini()
}

// Get the same color, but with a lower or equal brightness, on a scale from
// 0-100, where 100 is the same as the input.
func withBrightness(color, light uint32) uint32 {
	if light >= 100 {
		return color
	}
	if light == 0 {
		return 0
	}

	r, g, b := (color>>16)&0xff, (color>>8)&0xff, color&0xff

	red := r * light / 100
	green := g * light / 100
	blue := b * light / 100

	return (red << 16) | (green << 8) | blue
}

const (
	colorPress  = 0x202020
	colorClick  = 0x00ff00
	colorDouble = 0x0000ff
	colorLong   = 0xffc800
	colorExtra1 = 0xff6000
	colorExtra2 = 0xff0000
)

// colorFor maps a gesture to its acknowledgment color. Zero means no
// feedback for that gesture.
func colorFor(ev button.Event) uint32 {
	switch ev {
	case button.Pressed:
		return colorPress
	case button.SingleClick:
		return colorClick
	case button.DoubleClick:
		return colorDouble
	case button.LongPress:
		return colorLong
	case button.ExtraLongPress1:
		return colorExtra1
	case button.ExtraLongPress2:
		return colorExtra2
	}
	return 0
}
