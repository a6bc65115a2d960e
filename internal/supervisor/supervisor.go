// Package supervisor implements the relaunch wrapper around the control
// process. The controller is expected to eventually crash under prolonged
// hardware-handle exhaustion; the supervisor's contract is to restart it
// unconditionally and keep a rotating trail of start events and captured
// stderr.
package supervisor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/coolhat/coolhatctl/internal/errors"
	"github.com/coolhat/coolhatctl/internal/logger"
)

const (
	// DefaultRestartDelay paces restarts so a crash loop does not spin.
	DefaultRestartDelay = time.Second

	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
)

type Config struct {
	// Command is the program to supervise plus its arguments.
	Command []string

	// LogPath is the rotating log file receiving start events and the
	// child's stderr.
	LogPath string

	RestartDelay time.Duration
}

// Supervisor relaunches its command until the context ends.
type Supervisor struct {
	command []string
	delay   time.Duration
	sink    *lumberjack.Logger
}

// New validates the config and truncates the log file once, so each
// supervisor lifetime starts with a fresh trail.
func New(cfg Config) (*Supervisor, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.WithData(errors.ErrSupervisorInit, "no command configured")
	}
	if cfg.LogPath == "" {
		return nil, errors.WithData(errors.ErrSupervisorInit, "no log path configured")
	}

	delay := cfg.RestartDelay
	if delay <= 0 {
		delay = DefaultRestartDelay
	}

	if err := os.WriteFile(cfg.LogPath, nil, 0o600); err != nil {
		return nil, errors.Wrap(errors.ErrSupervisorInit, err)
	}

	return &Supervisor{
		command: cfg.Command,
		delay:   delay,
		sink: &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
		},
	}, nil
}

// Run launches the command, waits for it to exit, logs the outcome, and
// launches it again. It returns only when ctx ends.
func (s *Supervisor) Run(ctx context.Context) error {
	defer s.sink.Close()

	for {
		if ctx.Err() != nil {
			return nil
		}

		s.logStart()

		if err := s.runOnce(ctx); err != nil {
			logger.Warn().Err(err).Str("command", s.command[0]).Msg("supervised process exited")
			fmt.Fprintf(s.sink, "%s exited: %v\n", time.Now().Format(time.RFC3339), err)
		} else {
			fmt.Fprintf(s.sink, "%s exited cleanly\n", time.Now().Format(time.RFC3339))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.delay):
		}
	}
}

func (s *Supervisor) runOnce(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, s.command[0], s.command[1:]...)
	cmd.Stderr = s.sink

	if err := cmd.Start(); err != nil {
		return errors.Wrap(errors.ErrSupervisorLaunch, err)
	}

	return cmd.Wait()
}

func (s *Supervisor) logStart() {
	logger.Info().Str("command", s.command[0]).Msg("starting supervised process")
	fmt.Fprintf(s.sink, "%s starting %s\n", time.Now().Format(time.RFC3339), s.command[0])
}
