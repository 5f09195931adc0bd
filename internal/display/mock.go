//go:build !pi

package display

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/callebjorkell/big-button/internal/button"
)

// Init initializes the LCD pins and puts the panel in 4-bit mode.
func Init() {
	log.Info("Starting the LCD")
}

// Show renders the gesture name on the second line.
func Show(ev button.Event) {
	log.Infof("LCD: %v", strings.ReplaceAll(ev.String(), "_", " "))
}

// Reset puts the idle banner back up.
func Reset() {
	log.Debug("LCD: reset")
}

// Clear blanks both lines.
func Clear() {
	log.Debug("LCD: clear")
}
