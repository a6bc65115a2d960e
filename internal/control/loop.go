// Package control owns the temperature control state machine: one tick
// samples the sensor, reclassifies, drives the hat on band transitions, and
// renders the status display. No error from a single tick ever terminates
// the loop; only construction of the collaborators can fail, and that
// happens before the loop starts.
package control

import (
	"context"
	"time"

	"github.com/coolhat/coolhatctl/internal/hat"
	"github.com/coolhat/coolhatctl/internal/logger"
	"github.com/coolhat/coolhatctl/internal/sensor"
	"github.com/coolhat/coolhatctl/internal/status"
	"github.com/coolhat/coolhatctl/internal/thermal"
)

// DefaultInterval is the control loop period.
const DefaultInterval = 5 * time.Second

// State is the loop's only mutable state: the band currently applied to the
// hat and the last successfully read temperature.
type State struct {
	Band        thermal.Band
	Temperature float64
}

// Loop drives one cooling actuator from one temperature source.
type Loop struct {
	source    sensor.Source
	actuator  hat.Actuator
	collector status.Collector
	presenter status.Presenter
	interval  time.Duration
	state     State
}

// NewLoop creates a loop in the fail-safe state: the hottest band is assumed
// until the first successful read, so a broken sensor leaves the fan at full
// speed instead of off.
func NewLoop(
	source sensor.Source,
	actuator hat.Actuator,
	collector status.Collector,
	presenter status.Presenter,
	interval time.Duration,
) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Loop{
		source:    source,
		actuator:  actuator,
		collector: collector,
		presenter: presenter,
		interval:  interval,
		state:     State{Band: thermal.MaxBand},
	}
}

// State returns a copy of the current control state.
func (l *Loop) State() State {
	return l.state
}

// Tick runs one sample-classify-apply-render cycle.
func (l *Loop) Tick(ctx context.Context) {
	temperature, err := l.source.Read()
	if err != nil {
		// Transient: keep the previous band and temperature, render anyway.
		logger.Warn().Err(err).Msg("temperature read failed, keeping current band")
	} else {
		l.state.Temperature = temperature
		l.reclassify(temperature)
	}

	l.render(ctx)
}

func (l *Loop) reclassify(temperature float64) {
	band := thermal.Classify(temperature)
	if band == l.state.Band {
		// Unchanged band: skip the register writes entirely.
		return
	}

	logger.Info().
		Float64("temperature", temperature).
		Stringer("from", l.state.Band).
		Stringer("to", band).
		Msg("band transition")

	if err := l.actuator.Apply(band); err != nil {
		logger.Error().Err(err).Stringer("band", band).Msg("apply failed")
	}

	// State advances even when the write failed; the hat gets written again
	// on the next genuine band change.
	l.state.Band = band
}

func (l *Loop) render(ctx context.Context) {
	snapshot, err := l.collector.Collect(ctx, l.state.Temperature)
	if err != nil {
		logger.Warn().Err(err).Msg("snapshot collection incomplete")
	}

	if err := l.presenter.Render(snapshot); err != nil {
		logger.Warn().Err(err).Msg("status render failed")
	}
}

// Run ticks on the fixed interval until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	logger.Info().Dur("interval", l.interval).Msg("control loop started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.Tick(ctx)
		}
	}
}
