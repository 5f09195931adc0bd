package button

import "fmt"

// Event is a disambiguated button gesture.
type Event int

const (
	Pressed Event = iota
	Released
	SingleClick
	DoubleClick
	LongPress
	ExtraLongPress1
	ExtraLongPress2
)

func (e Event) String() string {
	switch e {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	case SingleClick:
		return "single_click"
	case DoubleClick:
		return "double_click"
	case LongPress:
		return "long_press"
	case ExtraLongPress1:
		return "extra_long_press_1"
	case ExtraLongPress2:
		return "extra_long_press_2"
	default:
		return fmt.Sprintf("unknown(%d)", int(e))
	}
}

// Callback receives gestures, one call per event. It is invoked on the
// engine's edge and timer goroutines with the engine lock held, so it must
// return quickly and must not call back into the engine.
type Callback func(Event)
