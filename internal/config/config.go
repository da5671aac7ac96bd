// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/finflags/flag-probe/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for flag-probe.
type Configuration struct {
	Thresholds Thresholds    `yaml:"thresholds,omitempty"`
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// Thresholds holds the business parameters behind the rule predicates.
type Thresholds struct {
	RevenueFloor          float64 `yaml:"revenueFloor,omitempty"`
	BorrowingToRevenueMax float64 `yaml:"borrowingToRevenueMax,omitempty"`
	ISCRFloor             float64 `yaml:"iscrFloor,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, json
}

// DefaultThresholds returns the stock rule thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RevenueFloor:          constants.DefaultRevenueFloor,
		BorrowingToRevenueMax: constants.DefaultBorrowingToRevenueMax,
		ISCRFloor:             constants.DefaultISCRFloor,
	}
}

// Default returns a Configuration carrying the stock thresholds.
func Default() *Configuration {
	return &Configuration{Thresholds: DefaultThresholds()}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults without error.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if configPath == "" {
		return Default(), nil
	}
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from the
// given reader.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	configuration.applyThresholdDefaults()
	return &configuration, nil
}

// applyThresholdDefaults fills unset thresholds with the stock values so a
// partial config never evaluates against zero-valued thresholds.
func (c *Configuration) applyThresholdDefaults() {
	defaults := DefaultThresholds()
	if c.Thresholds.RevenueFloor == 0 {
		c.Thresholds.RevenueFloor = defaults.RevenueFloor
	}
	if c.Thresholds.BorrowingToRevenueMax == 0 {
		c.Thresholds.BorrowingToRevenueMax = defaults.BorrowingToRevenueMax
	}
	if c.Thresholds.ISCRFloor == 0 {
		c.Thresholds.ISCRFloor = defaults.ISCRFloor
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Thresholds.RevenueFloor < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"revenueFloor %.2f is negative; every record will raise %s",
			c.Thresholds.RevenueFloor, constants.TotalRevenue5CrFlagName))
	}
	if c.Thresholds.BorrowingToRevenueMax < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"borrowingToRevenueMax %.2f is negative; any borrowing will raise %s",
			c.Thresholds.BorrowingToRevenueMax, constants.BorrowingToRevenueFlagName))
	}
	if c.Thresholds.BorrowingToRevenueMax > 1 {
		warnings = append(warnings, fmt.Sprintf(
			"borrowingToRevenueMax %.2f exceeds 1.0; only borrowing above full revenue will be flagged",
			c.Thresholds.BorrowingToRevenueMax))
	}
	if c.Thresholds.ISCRFloor < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"iscrFloor %.2f is negative; %s will only raise on negative coverage",
			c.Thresholds.ISCRFloor, constants.ISCRFlagName))
	}

	return warnings
}
