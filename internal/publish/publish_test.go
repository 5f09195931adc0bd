package publish

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callebjorkell/big-button/internal/button"
)

func TestFormatPayload(t *testing.T) {
	at := time.Date(2023, 4, 1, 12, 30, 0, 0, time.UTC)

	raw, err := FormatPayload(button.DoubleClick, at)
	require.NoError(t, err)

	var p Payload
	require.NoError(t, json.Unmarshal(raw, &p))
	assert.Equal(t, "double_click", p.Gesture)
	assert.True(t, at.Equal(p.Time))
}

func TestFakeRecordsEvents(t *testing.T) {
	f := NewFakePublisher()

	require.NoError(t, f.Publish(button.Pressed))
	require.NoError(t, f.Publish(button.SingleClick))

	assert.Equal(t, []button.Event{button.Pressed, button.SingleClick}, f.Events)
}

func TestFakePublishError(t *testing.T) {
	f := NewFakePublisher()
	f.PublishError = errors.New("broker is gone")

	assert.Error(t, f.Publish(button.Pressed))
	assert.Empty(t, f.Events)
}

func TestFakeClose(t *testing.T) {
	f := NewFakePublisher()
	require.NoError(t, f.Close())
	assert.True(t, f.Closed)
}
