package hat

import (
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/coolhat/coolhatctl/internal/errors"
	"github.com/coolhat/coolhatctl/internal/logger"
	"github.com/coolhat/coolhatctl/internal/thermal"
)

// Controller talks to the hat over an I2C bus. The bus handle is acquired
// and released within each Apply rather than held for the process lifetime,
// so a long-running loop never leaks a stale handle.
type Controller struct {
	busName string
	addr    uint16
}

// NewController initializes the host drivers and probes the bus once so a
// missing hat is a fatal startup error. busName may be empty for the first
// available bus.
func NewController(busName string, addr uint16) (*Controller, error) {
	if addr == 0 {
		addr = DefaultAddr
	}

	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(errors.ErrHatInit, err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, errors.Wrap(errors.ErrHatInit, err)
	}
	if err := bus.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrHatInit, err)
	}

	return &Controller{busName: busName, addr: addr}, nil
}

func (c *Controller) Apply(band thermal.Band) error {
	bus, err := i2creg.Open(c.busName)
	if err != nil {
		return errors.Wrap(errors.ErrActuatorApply, err)
	}
	defer bus.Close()

	dev := &i2c.Dev{Bus: bus, Addr: c.addr}
	for _, f := range applySequence(band) {
		if err := dev.Tx(f[:], nil); err != nil {
			return errors.Wrap(errors.ErrActuatorApply, err)
		}
	}

	logger.Debug().
		Stringer("band", band).
		Uint8("fan_level", band.Setting().FanLevel).
		Msg("applied cooling settings")

	return nil
}
