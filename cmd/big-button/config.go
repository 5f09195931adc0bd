package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/callebjorkell/big-button/internal/button"
)

const defaultPin = "GPIO20"

type Config struct {
	Button struct {
		Pin                 string `yaml:"pin"`
		DebounceMs          int    `yaml:"debounceMs"`
		DoubleClickWindowMs int    `yaml:"doubleClickWindowMs"`
		LongPressMs         int    `yaml:"longPressMs"`
		ExtraLongPress1Ms   int    `yaml:"extraLongPress1Ms"`
		ExtraLongPress2Ms   int    `yaml:"extraLongPress2Ms"`
	} `yaml:"button"`
	Led struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"led"`
	Lcd struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"lcd"`
	Mqtt struct {
		Broker string `yaml:"broker"`
		Topic  string `yaml:"topic"`
	} `yaml:"mqtt"`
}

// Thresholds converts the configured millisecond values into engine
// thresholds, keeping the calibrated defaults for anything left unset.
func (c Config) Thresholds() button.Thresholds {
	t := button.DefaultThresholds()
	if c.Button.DebounceMs > 0 {
		t.Debounce = time.Duration(c.Button.DebounceMs) * time.Millisecond
	}
	if c.Button.DoubleClickWindowMs > 0 {
		t.DoubleClickWindow = time.Duration(c.Button.DoubleClickWindowMs) * time.Millisecond
	}
	if c.Button.LongPressMs > 0 {
		t.LongPress = time.Duration(c.Button.LongPressMs) * time.Millisecond
	}
	if c.Button.ExtraLongPress1Ms > 0 {
		t.ExtraLongPress1 = time.Duration(c.Button.ExtraLongPress1Ms) * time.Millisecond
	}
	if c.Button.ExtraLongPress2Ms > 0 {
		t.ExtraLongPress2 = time.Duration(c.Button.ExtraLongPress2Ms) * time.Millisecond
	}
	return t
}

func parseConfig(content []byte) (*Config, error) {
	c := defaultConfig()
	if err := yaml.Unmarshal(content, c); err != nil {
		return nil, err
	}

	if c.Button.Pin == "" {
		return nil, fmt.Errorf("button pin must not be empty")
	}
	if err := c.Thresholds().Validate(); err != nil {
		return nil, fmt.Errorf("button thresholds: %w", err)
	}
	if c.Mqtt.Broker == "" && c.Mqtt.Topic != "" {
		return nil, fmt.Errorf("mqtt topic is set but no broker is configured")
	}

	return c, nil
}

func defaultConfig() *Config {
	c := &Config{}
	c.Button.Pin = defaultPin
	c.Led.Enabled = true
	c.Lcd.Enabled = true
	return c
}

// readConfig loads the named file, or config.yaml when no path is given. A
// missing default file is not an error; the defaults just apply.
func readConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = "config.yaml"
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return parseConfig(content)
}
