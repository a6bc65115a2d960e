package hat

import "github.com/coolhat/coolhatctl/internal/thermal"

// Fake is a test double that records every applied band.
type Fake struct {
	// Applied contains the bands passed to Apply, in order.
	Applied []thermal.Band

	// ApplyError, if set, is returned by every Apply. The band is still
	// recorded so tests can verify optimistic state advancement.
	ApplyError error
}

func (f *Fake) Apply(band thermal.Band) error {
	f.Applied = append(f.Applied, band)

	return f.ApplyError
}
