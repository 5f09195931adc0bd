// Package publish pushes gesture events to an MQTT broker so other systems
// on the network can react to the button.
package publish

import (
	"encoding/json"
	"time"

	"github.com/callebjorkell/big-button/internal/button"
)

// DefaultTopic is used when the configuration does not name one.
const DefaultTopic = "home/big-button/gestures"

// Publisher delivers gesture events to a broker. Publish failures are
// reported, not fatal; the button keeps working without the network.
type Publisher interface {
	Publish(ev button.Event) error
	Close() error
}

// Payload is the JSON message published per gesture.
type Payload struct {
	Gesture string    `json:"gesture"`
	Time    time.Time `json:"time"`
}

// FormatPayload renders the wire format for a gesture.
func FormatPayload(ev button.Event, at time.Time) ([]byte, error) {
	return json.Marshal(Payload{
		Gesture: ev.String(),
		Time:    at,
	})
}
