// Package pid guards against running two control loops against the same
// hat. Sweeps are not guarded; they are short-lived diagnostics.
package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/coolhat/coolhatctl/internal/errors"
)

const pidFile = "coolhatctl.pid"

// Write writes the current process ID to the PID file. If the file exists
// and its process is still alive, ErrAlreadyRunning is returned; a stale
// file is overwritten.
func Write() error {
	pid := os.Getpid()
	path := filepath.Join(os.TempDir(), pidFile)

	if data, err := os.ReadFile(path); err == nil {
		previous, err := strconv.Atoi(strings.TrimSpace(string(data)))
		if err == nil && isAlive(previous) {
			return errors.WithData(errors.ErrAlreadyRunning, previous)
		}
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(pid)), 0o600); err != nil {
		return errors.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// Remove removes the PID file.
func Remove() error {
	path := filepath.Join(os.TempDir(), pidFile)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(path); err != nil {
		return errors.Wrap(errors.ErrInternal, err)
	}

	return nil
}

func isAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}
