package control

import (
	"context"
	"time"

	"github.com/coolhat/coolhatctl/internal/hat"
	"github.com/coolhat/coolhatctl/internal/logger"
	"github.com/coolhat/coolhatctl/internal/status"
	"github.com/coolhat/coolhatctl/internal/thermal"
)

// DefaultSweepDelay is the pause between sweep steps, slow enough to watch
// the fan and LEDs react.
const DefaultSweepDelay = time.Second

// Synthetic temperature range for the temperature sweep, inclusive.
const (
	sweepStart = 30
	sweepEnd   = 64
)

// TemperatureSweep drives the classify-and-apply-on-change logic with
// synthetic temperatures instead of sensor readings. It crosses every band
// boundary exactly once, so a full run exercises every hardware setting.
type TemperatureSweep struct {
	actuator  hat.Actuator
	collector status.Collector
	presenter status.Presenter
	delay     time.Duration
}

func NewTemperatureSweep(
	actuator hat.Actuator,
	collector status.Collector,
	presenter status.Presenter,
	delay time.Duration,
) *TemperatureSweep {
	return &TemperatureSweep{
		actuator:  actuator,
		collector: collector,
		presenter: presenter,
		delay:     delay,
	}
}

// Run steps through 30..64 degrees. The actuator is invoked only at the six
// boundary crossings; the starting temperature's band is taken as the
// baseline without a write.
func (s *TemperatureSweep) Run(ctx context.Context) error {
	band := thermal.Classify(sweepStart)

	for t := sweepStart; t <= sweepEnd; t++ {
		temperature := float64(t)

		if snapshot, err := s.collector.Collect(ctx, temperature); err != nil {
			logger.Warn().Err(err).Msg("snapshot collection incomplete")
		} else if err := s.presenter.Render(snapshot); err != nil {
			logger.Warn().Err(err).Msg("status render failed")
		}

		next := thermal.Classify(temperature)
		logger.Info().
			Float64("temperature", temperature).
			Stringer("band", next).
			Msg("simulated temperature")

		if next != band {
			if err := s.actuator.Apply(next); err != nil {
				logger.Error().Err(err).Stringer("band", next).Msg("apply failed")
			}
			band = next
		}

		if !sleep(ctx, s.delay) {
			return nil
		}
	}

	return nil
}

// BandSweep applies every band's setting in descending order and then in
// ascending order, unconditionally, so each fan level and LED color can be
// verified by eye.
type BandSweep struct {
	actuator hat.Actuator
	delay    time.Duration
}

func NewBandSweep(actuator hat.Actuator, delay time.Duration) *BandSweep {
	return &BandSweep{actuator: actuator, delay: delay}
}

func (s *BandSweep) Run(ctx context.Context) error {
	bands := thermal.Bands()

	for i := len(bands) - 1; i >= 0; i-- {
		if !s.step(ctx, bands[i]) {
			return nil
		}
	}

	for _, band := range bands {
		if !s.step(ctx, band) {
			return nil
		}
	}

	return nil
}

func (s *BandSweep) step(ctx context.Context, band thermal.Band) bool {
	logger.Info().Stringer("band", band).Msg("applying band settings")

	if err := s.actuator.Apply(band); err != nil {
		logger.Error().Err(err).Stringer("band", band).Msg("apply failed")
	}

	return sleep(ctx, s.delay)
}

// sleep pauses for the given delay, returning false when ctx ended first.
func sleep(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
