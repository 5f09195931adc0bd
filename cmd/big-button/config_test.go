package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	content := []byte(`
button:
  pin: GPIO21
  debounceMs: 20
  doubleClickWindowMs: 350
  longPressMs: 800
  extraLongPress1Ms: 2500
  extraLongPress2Ms: 5000
led:
  enabled: false
mqtt:
  broker: tcp://broker.local:1883
  topic: home/button
`)

	c, err := parseConfig(content)
	require.NoError(t, err)

	assert.Equal(t, "GPIO21", c.Button.Pin)
	assert.False(t, c.Led.Enabled)
	assert.True(t, c.Lcd.Enabled, "lcd should default to enabled")
	assert.Equal(t, "tcp://broker.local:1883", c.Mqtt.Broker)

	th := c.Thresholds()
	assert.Equal(t, 20*time.Millisecond, th.Debounce)
	assert.Equal(t, 350*time.Millisecond, th.DoubleClickWindow)
	assert.Equal(t, 800*time.Millisecond, th.LongPress)
	assert.Equal(t, 2500*time.Millisecond, th.ExtraLongPress1)
	assert.Equal(t, 5*time.Second, th.ExtraLongPress2)
}

func TestParseConfigDefaults(t *testing.T) {
	c, err := parseConfig([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, defaultPin, c.Button.Pin)
	assert.True(t, c.Led.Enabled)
	assert.Empty(t, c.Mqtt.Broker)
	assert.NoError(t, c.Thresholds().Validate())
}

func TestParseConfigRejectsBadThresholds(t *testing.T) {
	content := []byte(`
button:
  longPressMs: 4000
  extraLongPress1Ms: 3000
`)

	_, err := parseConfig(content)
	assert.Error(t, err)
}

func TestParseConfigRejectsTopicWithoutBroker(t *testing.T) {
	content := []byte(`
mqtt:
  topic: home/button
`)

	_, err := parseConfig(content)
	assert.Error(t, err)
}

func TestReadConfigMissingDefaultFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	c, err := readConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultPin, c.Button.Pin)
}

func TestReadConfigMissingExplicitFile(t *testing.T) {
	_, err := readConfig("/definitely/not/here.yaml")
	assert.Error(t, err)
}
