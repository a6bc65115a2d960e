package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coolhat/coolhatctl/internal/config"
	"github.com/coolhat/coolhatctl/internal/errors"
	"github.com/coolhat/coolhatctl/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	os.Args = append([]string{"coolhatctl"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coolhatctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	withArgs(t)
	t.Setenv("COOLHATCTL_CONFIG", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Interval, "Expected default Interval 5")
	assert.Equal(t, 1, cfg.SweepDelay, "Expected default SweepDelay 1")
	assert.Equal(t, sensor.DefaultThermalZonePath, cfg.ThermalZone)
	assert.Equal(t, uint16(0x0d), cfg.I2CAddr)
	assert.Equal(t, []string{"eth0", "wlan0"}, cfg.Interfaces)
	assert.True(t, cfg.OLED, "Expected OLED on by default")
	assert.Empty(t, cfg.TestMode)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	withArgs(t)

	path := writeConfig(t, `
interval = 10
sweep_delay = 2
thermal_zone = "/tmp/fake_temp"
i2c_addr = 28
interfaces = ["wlan0"]
oled = false
verbose = true
`)
	t.Setenv("COOLHATCTL_CONFIG", path)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Interval)
	assert.Equal(t, 2, cfg.SweepDelay)
	assert.Equal(t, "/tmp/fake_temp", cfg.ThermalZone)
	assert.Equal(t, uint16(28), cfg.I2CAddr)
	assert.Equal(t, []string{"wlan0"}, cfg.Interfaces)
	assert.False(t, cfg.OLED)
	assert.True(t, cfg.Verbose)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := writeConfig(t, `
interval = 10
`)
	t.Setenv("COOLHATCTL_CONFIG", path)
	withArgs(t, "--interval", "3", "--debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Interval)
	assert.True(t, cfg.Debug)
}

func TestTestModeFlag(t *testing.T) {
	t.Setenv("COOLHATCTL_CONFIG", "")
	withArgs(t, "-t", "sweepTemperatures")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.SweepTemperatures, cfg.TestMode)
}

func TestUnknownTestModeRejected(t *testing.T) {
	t.Setenv("COOLHATCTL_CONFIG", "")
	withArgs(t, "-t", "sweepEverything")

	_, err := config.Load()
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))
}

func TestPositionalArgumentsRejected(t *testing.T) {
	t.Setenv("COOLHATCTL_CONFIG", "")
	withArgs(t, "unexpected")

	_, err := config.Load()
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))
}

func TestInvalidConfigFileFormat(t *testing.T) {
	withArgs(t)

	path := writeConfig(t, "This is not a valid TOML file")
	t.Setenv("COOLHATCTL_CONFIG", path)

	_, err := config.Load()
	require.Error(t, err)
	assert.Equal(t, errors.ErrReadConfig, errors.CodeOf(err))
}

func TestInvalidInterval(t *testing.T) {
	withArgs(t)

	path := writeConfig(t, "interval = 0")
	t.Setenv("COOLHATCTL_CONFIG", path)

	_, err := config.Load()
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidConfig, errors.CodeOf(err))
}
