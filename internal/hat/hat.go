// Package hat drives the Smart Cooling Hat fan and RGB LEDs over I2C.
package hat

import "github.com/coolhat/coolhatctl/internal/thermal"

// DefaultAddr is the hat's fixed I2C device address.
const DefaultAddr uint16 = 0x0d

// Hat register map.
const (
	regLEDSelect = 0x00 // LED index, or ledAll for the broadcast write
	regLEDRed    = 0x01
	regLEDGreen  = 0x02
	regLEDBlue   = 0x03
	regFanPWM    = 0x08

	ledAll = 0xff
)

// Actuator applies the fan speed and LED color for a thermal band.
// Implementations must tolerate repeated calls; the real controller opens
// and closes its bus handle inside every Apply.
type Actuator interface {
	Apply(band thermal.Band) error
}

// frame is a single register write: register offset followed by the value.
type frame [2]byte

// applySequence returns the register writes that put the hat into the given
// band's setting: fan PWM first, then the broadcast LED color, matching the
// order the firmware expects.
func applySequence(band thermal.Band) []frame {
	s := band.Setting()

	return []frame{
		{regFanPWM, s.FanLevel},
		{regLEDSelect, ledAll},
		{regLEDRed, s.Color.R},
		{regLEDGreen, s.Color.G},
		{regLEDBlue, s.Color.B},
	}
}
