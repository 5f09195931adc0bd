// Package button turns the raw, bouncy edges of a physical pushbutton into
// semantic gestures: press, release, single and double clicks, and three
// escalating long press tiers.
//
// A raw edge opens a fixed debounce window; the level is re-validated once
// when the window expires and further edges inside the window are ignored
// rather than restarting it. A level that bounced back by then is discarded
// as noise. Confirmed presses arm a cascade timer that fires each long press
// tier as its threshold is crossed, and confirmed short releases are held in
// a double click window before being resolved to a single or double click.
package button

import (
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/callebjorkell/big-button/internal/edge"
	"github.com/callebjorkell/big-button/internal/timer"
)

var (
	ErrAlreadyStarted = errors.New("engine is already started")
	ErrNotStarted     = errors.New("engine is not started")
)

type state int

const (
	stateIdle state = iota
	stateDebouncingPress
	statePressed
	stateDebouncingRelease
	stateWaitDoubleClick
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateDebouncingPress:
		return "debouncing-press"
	case statePressed:
		return "pressed"
	case stateDebouncingRelease:
		return "debouncing-release"
	case stateWaitDoubleClick:
		return "wait-double-click"
	}
	return "invalid"
}

// Engine is the gesture state machine for a single button. All state is
// owned by the instance, so independent buttons are just independent
// engines. The edge goroutine and the timer goroutines both mutate the
// machine, serialized by a single mutex.
type Engine struct {
	mu    sync.Mutex
	src   edge.Source
	sched timer.Scheduler
	cb    Callback
	t     Thresholds

	state      state
	pressTime  time.Time
	clickCount int

	debounce timer.Timer
	press    timer.Timer
	double   timer.Timer

	started bool
}

// New creates an engine for the given edge source. The timers are allocated
// up front; nothing is armed and no edges are watched until Start.
func New(src edge.Source, sched timer.Scheduler, cb Callback, t Thresholds) (*Engine, error) {
	if src == nil {
		return nil, errors.New("edge source is required")
	}
	if sched == nil {
		return nil, errors.New("scheduler is required")
	}
	if cb == nil {
		return nil, errors.New("callback is required")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		src:   src,
		sched: sched,
		cb:    cb,
		t:     t,
	}
	e.debounce = sched.NewTimer(e.onDebounce)
	e.press = sched.NewTimer(e.onPress)
	e.double = sched.NewTimer(e.onDouble)

	return e, nil
}

// Start resets the machine and attaches to the edge source.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return ErrAlreadyStarted
	}

	e.state = stateIdle
	e.clickCount = 0
	if err := e.src.Attach(e.onEdge); err != nil {
		return fmt.Errorf("attach edge source: %w", err)
	}
	e.started = true

	log.Info("Button engine started")
	return nil
}

// Close detaches from the edge source and disarms all timers. A closed
// engine can be started again.
func (e *Engine) Close() error {
	e.mu.Lock()
	if !e.started {
		e.mu.Unlock()
		return ErrNotStarted
	}
	e.started = false
	e.mu.Unlock()

	// Detach without the lock held: the edge goroutine may be blocked on it,
	// and Detach waits for that goroutine to finish.
	err := e.src.Detach()

	e.mu.Lock()
	e.debounce.Stop()
	e.press.Stop()
	e.double.Stop()
	e.state = stateIdle
	e.clickCount = 0
	e.mu.Unlock()

	if err != nil {
		return fmt.Errorf("detach edge source: %w", err)
	}
	log.Info("Button engine stopped")
	return nil
}

// Level reads the instantaneous electrical level of the line, true meaning
// pressed. It bypasses the state machine entirely.
func (e *Engine) Level() bool {
	return e.src.Level()
}

// onEdge runs on every raw transition. It only opens a debounce window when
// none is open yet; once a window is open the pending debounce timer is the
// sole arbiter of the transition.
func (e *Engine) onEdge() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started {
		return
	}

	switch e.state {
	case stateIdle, statePressed, stateWaitDoubleClick:
	default:
		return
	}

	if e.src.Level() {
		e.state = stateDebouncingPress
	} else {
		e.state = stateDebouncingRelease
	}
	e.debounce.Reset(e.t.Debounce)
}

// onDebounce re-validates the level at the end of the debounce window.
func (e *Engine) onDebounce() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started {
		return
	}

	pressed := e.src.Level()
	switch e.state {
	case stateDebouncingPress:
		if pressed {
			e.confirmPress()
		} else {
			log.Debug("Press bounced back, discarding as noise")
			e.state = stateIdle
		}
	case stateDebouncingRelease:
		if !pressed {
			e.confirmRelease()
		} else {
			log.Debug("Release bounced back, still pressed")
			e.state = statePressed
		}
	}
}

func (e *Engine) confirmPress() {
	e.pressTime = e.sched.Now()
	e.state = statePressed
	e.emit(Pressed)
	e.press.Reset(e.t.LongPress)
}

func (e *Engine) confirmRelease() {
	e.press.Stop()
	e.double.Stop()

	held := e.sched.Now().Sub(e.pressTime)
	log.Debugf("Button released after %v", held)
	e.emit(Released)

	if held >= e.t.LongPress {
		// The matching tier event already fired while the button was held,
		// so a long release never counts as a click.
		e.clickCount = 0
		e.state = stateIdle
		return
	}

	e.clickCount++
	if e.clickCount == 1 {
		e.state = stateWaitDoubleClick
		e.double.Reset(e.t.DoubleClickWindow)
		return
	}
	e.emit(DoubleClick)
	e.clickCount = 0
	e.state = stateIdle
}

// onPress fires each long press tier as its threshold is crossed. The timer
// is re-armed for the remaining distance to the next tier so every tier
// fires at its nominal instant, and the ceiling tier fires once without
// re-arming. A release in flight cancels the timer, so firing in any other
// state is a stale shot and ignored.
func (e *Engine) onPress() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started || e.state != statePressed {
		return
	}

	held := e.sched.Now().Sub(e.pressTime)
	switch {
	case held >= e.t.ExtraLongPress2:
		e.emit(ExtraLongPress2)
	case held >= e.t.ExtraLongPress1:
		e.emit(ExtraLongPress1)
		e.press.Reset(e.t.ExtraLongPress2 - held)
	case held >= e.t.LongPress:
		e.emit(LongPress)
		e.press.Reset(e.t.ExtraLongPress1 - held)
	}
}

// onDouble resolves a pending short click once the double click window
// expires without a second press.
func (e *Engine) onDouble() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started || e.state != stateWaitDoubleClick {
		return
	}

	e.emit(SingleClick)
	e.clickCount = 0
	e.state = stateIdle
}

func (e *Engine) emit(ev Event) {
	log.Debug("Event: ", ev)
	e.cb(ev)
}
