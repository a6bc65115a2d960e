// Package status collects per-tick system metrics and renders them on the
// hat's OLED display. Everything here is a collaborator of the control
// loop: collection and rendering failures are reported but never stop the
// loop.
package status

import (
	"context"
	"fmt"
)

// Snapshot is the read-only aggregate rendered on each tick. It has no
// identity beyond the tick that built it.
type Snapshot struct {
	CPULoad     float64 // percent
	MemTotal    uint64  // bytes
	MemFree     uint64
	DiskTotal   uint64
	DiskFree    uint64
	Interface   string // name of the interface the address belongs to
	IPAddr      string
	Temperature float64 // degrees Celsius
}

// Collector builds a Snapshot around the given temperature reading.
type Collector interface {
	Collect(ctx context.Context, temperature float64) (Snapshot, error)
}

// Presenter renders a snapshot. Render errors are logged and ignored by
// callers.
type Presenter interface {
	Render(snapshot Snapshot) error
}

const bytesPerMB = 1 << 20

// CPULine formats the load line, e.g. "CPU:12%".
func (s Snapshot) CPULine() string {
	return fmt.Sprintf("CPU:%.0f%%", s.CPULoad)
}

// TempLine formats the temperature line, e.g. "Temp:45.3C".
func (s Snapshot) TempLine() string {
	return fmt.Sprintf("Temp:%.1fC", s.Temperature)
}

// RAMLine formats free/total memory in MB.
func (s Snapshot) RAMLine() string {
	return fmt.Sprintf("RAM:%d/%d MB", s.MemFree/bytesPerMB, s.MemTotal/bytesPerMB)
}

// DiskLine formats free/total disk space in MB.
func (s Snapshot) DiskLine() string {
	return fmt.Sprintf("Disk:%d/%dMB", s.DiskFree/bytesPerMB, s.DiskTotal/bytesPerMB)
}

// IPLine formats the primary interface address, empty when none was found.
func (s Snapshot) IPLine() string {
	if s.Interface == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", s.Interface, s.IPAddr)
}

// Lines returns the five display rows in render order.
func (s Snapshot) Lines() []string {
	return []string{s.CPULine(), s.TempLine(), s.RAMLine(), s.DiskLine(), s.IPLine()}
}
