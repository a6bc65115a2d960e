// Package sensor provides the CPU temperature source. The real
// implementation reads the kernel thermal zone; the fake allows driving the
// control loop without hardware.
package sensor

// DefaultThermalZonePath is where the Pi exposes the CPU die temperature
// in millidegrees Celsius.
const DefaultThermalZonePath = "/sys/class/thermal/thermal_zone0/temp"

// Source reads the current CPU temperature in degrees Celsius.
type Source interface {
	Read() (float64, error)
}
