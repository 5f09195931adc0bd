package button

import (
	"fmt"
	"time"
)

// Thresholds holds the timing calibration for gesture detection. The long
// press tiers must be strictly increasing.
type Thresholds struct {
	// Debounce is how long the line must stay settled after a raw edge
	// before the new level is accepted.
	Debounce time.Duration
	// DoubleClickWindow is how long after a short release a second press is
	// still counted as part of a double click.
	DoubleClickWindow time.Duration
	LongPress         time.Duration
	ExtraLongPress1   time.Duration
	ExtraLongPress2   time.Duration
}

// DefaultThresholds returns the calibration used on the reference hardware.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Debounce:          30 * time.Millisecond,
		DoubleClickWindow: 400 * time.Millisecond,
		LongPress:         1 * time.Second,
		ExtraLongPress1:   3 * time.Second,
		ExtraLongPress2:   6 * time.Second,
	}
}

func (t Thresholds) Validate() error {
	if t.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive, got %v", t.Debounce)
	}
	if t.DoubleClickWindow <= 0 {
		return fmt.Errorf("double click window must be positive, got %v", t.DoubleClickWindow)
	}
	if t.LongPress <= 0 {
		return fmt.Errorf("long press threshold must be positive, got %v", t.LongPress)
	}
	if t.ExtraLongPress1 <= t.LongPress {
		return fmt.Errorf("extra long press 1 (%v) must exceed long press (%v)", t.ExtraLongPress1, t.LongPress)
	}
	if t.ExtraLongPress2 <= t.ExtraLongPress1 {
		return fmt.Errorf("extra long press 2 (%v) must exceed extra long press 1 (%v)", t.ExtraLongPress2, t.ExtraLongPress1)
	}
	return nil
}
