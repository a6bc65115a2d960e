package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coolhat/coolhatctl/internal/config"
	"github.com/coolhat/coolhatctl/internal/control"
	"github.com/coolhat/coolhatctl/internal/errors"
	"github.com/coolhat/coolhatctl/internal/hat"
	"github.com/coolhat/coolhatctl/internal/logger"
	"github.com/coolhat/coolhatctl/internal/pid"
	"github.com/coolhat/coolhatctl/internal/sensor"
	"github.com/coolhat/coolhatctl/internal/status"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		switch errors.CodeOf(err) {
		case errors.ErrInvalidArgument, errors.ErrBindFlags:
			usage()
		}
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "\t coolhatctl, or")
	fmt.Fprintln(os.Stderr, "\t coolhatctl -t sweepTempRanges, or")
	fmt.Fprintln(os.Stderr, "\t coolhatctl -t sweepTemperatures")
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	// The hat must be reachable before any mode starts.
	actuator, err := hat.NewController(cfg.I2CBus, cfg.I2CAddr)
	if err != nil {
		return err
	}

	sweepDelay := time.Duration(cfg.SweepDelay) * time.Second

	switch cfg.TestMode {
	case config.SweepTempRanges:
		logger.Info().Msg("running band sweep")
		return control.NewBandSweep(actuator, sweepDelay).Run(ctx)

	case config.SweepTemperatures:
		logger.Info().Msg("running temperature sweep")
		collector := status.NewSystemCollector(cfg.Interfaces)
		return control.NewTemperatureSweep(actuator, collector, newPresenter(cfg), sweepDelay).Run(ctx)
	}

	source, err := sensor.NewThermalZone(cfg.ThermalZone)
	if err != nil {
		return err
	}

	if err := pid.Write(); err != nil {
		return err
	}
	defer func() {
		if err := pid.Remove(); err != nil {
			logger.Warn().Err(err).Msg("failed to remove pid file")
		}
	}()

	loop := control.NewLoop(
		source,
		actuator,
		status.NewSystemCollector(cfg.Interfaces),
		newPresenter(cfg),
		time.Duration(cfg.Interval)*time.Second,
	)

	return loop.Run(ctx)
}

// newPresenter prefers the OLED but degrades to log output: display
// trouble is never fatal.
func newPresenter(cfg *config.Config) status.Presenter {
	if !cfg.OLED {
		return status.LogPresenter{}
	}

	oled, err := status.NewOLED(cfg.I2CBus)
	if err != nil {
		logger.Warn().Err(err).Msg("OLED unavailable, falling back to log output")
		return status.LogPresenter{}
	}

	return oled
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
