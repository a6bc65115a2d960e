package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/coolhat/coolhatctl/internal/errors"
	"github.com/coolhat/coolhatctl/internal/sensor"
	"github.com/coolhat/coolhatctl/internal/status"
)

// TestMode values accepted by the -t flag.
const (
	SweepTemperatures = "sweepTemperatures"
	SweepTempRanges   = "sweepTempRanges"
)

const (
	defaultInterval   = 5
	defaultSweepDelay = 1
	defaultI2CAddr    = 0x0d
)

type Config struct {
	Interval    int      `mapstructure:"interval"`    // seconds between control ticks
	SweepDelay  int      `mapstructure:"sweep_delay"` // seconds between sweep steps
	ThermalZone string   `mapstructure:"thermal_zone"`
	I2CBus      string   `mapstructure:"i2c_bus"`
	I2CAddr     uint16   `mapstructure:"i2c_addr"`
	Interfaces  []string `mapstructure:"interfaces"`
	OLED        bool     `mapstructure:"oled"`
	Debug       bool     `mapstructure:"debug"`
	Verbose     bool     `mapstructure:"verbose"`

	// TestMode selects a diagnostic sweep instead of the control loop.
	// Flag-only; not read from the config file.
	TestMode string `mapstructure:"-"`
}

// Load reads defaults, the optional config file (/etc/coolhatctl.toml, or
// the file named by COOLHATCTL_CONFIG), and command line flags, in
// ascending priority.
func Load() (*Config, error) {
	config := &Config{}

	fs := pflag.NewFlagSet("coolhatctl", pflag.ContinueOnError)
	fs.StringVarP(&config.TestMode, "test", "t", "", "Run a diagnostic sweep (sweepTemperatures|sweepTempRanges)")
	fs.Int("interval", defaultInterval, "Seconds between control ticks")
	fs.Int("sweep-delay", defaultSweepDelay, "Seconds between sweep steps")
	fs.String("thermal-zone", sensor.DefaultThermalZonePath, "Thermal zone file to read the CPU temperature from")
	fs.String("i2c-bus", "", "I2C bus name (empty for the first available bus)")
	fs.Bool("oled", true, "Render status on the OLED display")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, errors.Wrap(errors.ErrBindFlags, err)
	}

	// Anything positional is not part of the CLI surface.
	if fs.NArg() > 0 {
		return nil, errors.WithData(errors.ErrInvalidArgument, strings.Join(fs.Args(), " "))
	}

	v := viper.New()
	v.SetDefault("interval", defaultInterval)
	v.SetDefault("sweep_delay", defaultSweepDelay)
	v.SetDefault("thermal_zone", sensor.DefaultThermalZonePath)
	v.SetDefault("i2c_bus", "")
	v.SetDefault("i2c_addr", defaultI2CAddr)
	v.SetDefault("interfaces", status.DefaultInterfaces)
	v.SetDefault("oled", true)
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)

	if path := os.Getenv("COOLHATCTL_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(errors.ErrReadConfig, err)
		}
	} else {
		v.SetConfigName("coolhatctl")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(errors.ErrReadConfig, err)
			}
		}
	}

	// Flags set on the command line win over file values.
	fs.Visit(func(f *pflag.Flag) {
		if f.Name == "test" {
			return
		}
		v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})

	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Interval <= 0 {
		return errors.WithData(errors.ErrInvalidConfig, "interval must be positive")
	}
	if c.SweepDelay < 0 {
		return errors.WithData(errors.ErrInvalidConfig, "sweep_delay must not be negative")
	}

	switch c.TestMode {
	case "", SweepTemperatures, SweepTempRanges:
	default:
		return errors.WithData(errors.ErrInvalidArgument, c.TestMode)
	}

	return nil
}
