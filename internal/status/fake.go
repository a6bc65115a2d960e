package status

import "context"

// FakePresenter records every rendered snapshot.
type FakePresenter struct {
	Rendered []Snapshot

	// RenderError, if set, is returned by every Render.
	RenderError error
}

func (f *FakePresenter) Render(snapshot Snapshot) error {
	f.Rendered = append(f.Rendered, snapshot)

	return f.RenderError
}

// FakeCollector returns a fixed snapshot with the requested temperature
// filled in.
type FakeCollector struct {
	Snapshot Snapshot

	// CollectError, if set, is returned alongside the snapshot.
	CollectError error
}

func (f *FakeCollector) Collect(_ context.Context, temperature float64) (Snapshot, error) {
	snapshot := f.Snapshot
	snapshot.Temperature = temperature

	return snapshot, f.CollectError
}
