package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/coolhat/coolhatctl/internal/logger"
	"github.com/coolhat/coolhatctl/internal/supervisor"
)

func main() {
	logPath := pflag.String("log", "/var/log/coolhatwatch.log", "Rotating log file for start events and captured stderr")
	delay := pflag.Duration("restart-delay", supervisor.DefaultRestartDelay, "Pause between relaunches")
	verbose := pflag.Bool("verbose", false, "Enable verbose logging")
	pflag.Parse()

	command := pflag.Args()
	if len(command) == 0 {
		command = []string{"coolhatctl"}
	}

	logger.Init(false, *verbose, logger.IsService())

	s, err := supervisor.New(supervisor.Config{
		Command:      command,
		LogPath:      *logPath,
		RestartDelay: *delay,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if err := s.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
