//go:build pi

package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/callebjorkell/big-button/internal/button"
)

var (
	registerSelection gpio.PinIO
	clockEdge         gpio.PinIO
	dataPins          [4]gpio.PinIO
)

func init() {
	if _, err := host.Init(); err != nil {
		logrus.Fatalln("Unable to initialize periph:", err)
	}
}

// Init initializes the LCD pins and puts the panel in 4-bit mode.
func Init() {
	logrus.Infoln("Initializing LCD")
	registerSelection = gpioreg.ByName(registerSelectionPin)
	clockEdge = gpioreg.ByName(clockEdgePin)
	dataPins[0] = gpioreg.ByName(data4Pin)
	dataPins[1] = gpioreg.ByName(data5Pin)
	dataPins[2] = gpioreg.ByName(data6Pin)
	dataPins[3] = gpioreg.ByName(data7Pin)

	sendByte(0x33, command)
	sendByte(0x32, command)
	sendByte(0x28, command)
	sendByte(0x0C, command)
	sendByte(0x06, command)
	sendByte(0x01, command)

	Reset()
}

func sendByte(bits byte, mode gpio.Level) {
	registerSelection.Out(mode)
	pulseByte(bits, 0x10)
	pulseByte(bits, 0x01)
}

func pulseByte(bits, mask byte) {
	for i, pin := range dataPins {
		pin.Out(gpio.Low)
		if bits&(mask<<uint(i)) != 0 {
			pin.Out(gpio.High)
		}
	}
	time.Sleep(signalDelay)
	clockEdge.Out(gpio.High)
	time.Sleep(signalPulse)
	clockEdge.Out(gpio.Low)
	time.Sleep(signalDelay)
}

func printLine(l Line, msg string) {
	sendByte(byte(l), command)
	m := fmt.Sprintf("%-16s", msg)
	for i := 0; i < lineWidth; i++ {
		sendByte(m[i], character)
	}
}

// Show renders the gesture name on the second line.
func Show(ev button.Event) {
	printLine(Line1, "Last gesture:")
	printLine(Line2, strings.ReplaceAll(ev.String(), "_", " "))
}

// Reset puts the idle banner back up.
func Reset() {
	printLine(Line1, "   big-button")
	printLine(Line2, "")
}

// Clear blanks both lines.
func Clear() {
	printLine(Line1, "")
	printLine(Line2, "")
}
