// Package edge delivers raw transitions of the button input line. The pi
// implementation watches a GPIO pin for both edges; everything else gets a
// signal-driven simulator so the daemon can run on a workstation.
package edge

// Source is a single input line that can report raw edge transitions.
// Attach registers onEdge to be called on every rising or falling edge; the
// callback runs on the source's goroutine and must not block. Level reads
// the instantaneous logic level, true meaning pressed, independent of any
// debouncing done by the caller.
type Source interface {
	Attach(onEdge func()) error
	Detach() error
	Level() bool
}
