package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/callebjorkell/big-button/internal/button"
)

func TestColor(t *testing.T) {
	tt := []struct {
		name   string
		input  uint32
		light  uint32
		output uint32
	}{
		{
			"full brightness red",
			0xff0000,
			100,
			0xff0000,
		},
		{
			"full brightness green",
			0x00ff00,
			100,
			0x00ff00,
		},
		{
			"full brightness blue",
			0x0000ff,
			100,
			0x0000ff,
		},
		{
			"zero brightness red",
			0xff0000,
			0,
			0x000000,
		},
		{
			"zero brightness green",
			0x00ff00,
			0,
			0x000000,
		},
		{
			"zero brightness blue",
			0x0000ff,
			0,
			0x000000,
		},
		{
			"50 percent",
			0x806040,
			50,
			0x403020,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			o := withBrightness(tc.input, tc.light)
			assert.Equal(t, tc.output, o)
		})
	}
}

func TestColorFor(t *testing.T) {
	tt := []struct {
		event button.Event
		color uint32
	}{
		{button.Pressed, colorPress},
		{button.Released, 0},
		{button.SingleClick, colorClick},
		{button.DoubleClick, colorDouble},
		{button.LongPress, colorLong},
		{button.ExtraLongPress1, colorExtra1},
		{button.ExtraLongPress2, colorExtra2},
	}

	for _, tc := range tt {
		t.Run(tc.event.String(), func(t *testing.T) {
			assert.Equal(t, tc.color, colorFor(tc.event))
		})
	}
}

type recordingEngine struct {
	colors []uint32
}

func (e recordingEngine) Init() error         { return nil }
func (e recordingEngine) Render() error       { return nil }
func (e recordingEngine) Wait() error         { return nil }
func (e recordingEngine) Fini()               {}
func (e recordingEngine) Leds(_ int) []uint32 { return e.colors }

func TestSetColorFillsStrip(t *testing.T) {
	e := recordingEngine{colors: make([]uint32, 4)}
	l := &LedController{ws: e}

	assert.NoError(t, l.setColor(0xff6000))
	for _, c := range e.colors {
		assert.Equal(t, uint32(0xff6000), c)
	}
}
