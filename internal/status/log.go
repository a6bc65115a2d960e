package status

import "github.com/coolhat/coolhatctl/internal/logger"

// LogPresenter writes the snapshot to the debug log. It is the fallback
// when no display is attached and never fails.
type LogPresenter struct{}

func (LogPresenter) Render(snapshot Snapshot) error {
	logger.Debug().
		Str("cpu", snapshot.CPULine()).
		Str("temp", snapshot.TempLine()).
		Str("ram", snapshot.RAMLine()).
		Str("disk", snapshot.DiskLine()).
		Str("ip", snapshot.IPLine()).
		Msg("status")

	return nil
}
