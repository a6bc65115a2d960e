package sensor

import (
	"os"
	"strconv"
	"strings"

	"github.com/coolhat/coolhatctl/internal/errors"
)

// ThermalZone reads the CPU temperature from a sysfs thermal zone file
// containing a single millidegree integer.
type ThermalZone struct {
	path string
}

// NewThermalZone validates the zone with a probe read so that a missing or
// unreadable sensor fails at startup rather than on the first tick.
func NewThermalZone(path string) (*ThermalZone, error) {
	if path == "" {
		path = DefaultThermalZonePath
	}

	z := &ThermalZone{path: path}
	if _, err := z.Read(); err != nil {
		return nil, errors.Wrap(errors.ErrSensorInit, err)
	}

	return z, nil
}

func (z *ThermalZone) Read() (float64, error) {
	data, err := os.ReadFile(z.path)
	if err != nil {
		return 0, errors.Wrap(errors.ErrTemperatureRead, err)
	}

	millideg, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrTemperatureRead, err)
	}

	return float64(millideg) / 1000.0, nil
}
