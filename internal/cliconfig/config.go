package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nmtkit/nmtlaunch/internal/domain"
)

// Config holds CLI configuration for nmtlaunch.
type Config struct {
	BaseDir string

	Python        string
	TrainerModule string

	DatasetURL  string
	HTTPTimeout time.Duration

	SourceLang string
	TargetLang string

	TrainSteps    int
	StepsPerStats int
	NumLayers     int
	NumUnits      int
	Dropout       float64
	Metrics       string
	BatchSize     int

	Download         bool
	WatchCheckpoints bool
	DryRun           bool
}

// DefaultConfig returns a Config with default values: the stock vi-en
// IWSLT'15 run under data/nmt.
func DefaultConfig() Config {
	hp := domain.DefaultHyperparams()
	return Config{
		BaseDir:          domain.DefaultBaseDir,
		Python:           "python",
		TrainerModule:    "nmt.nmt",
		DatasetURL:       domain.DefaultDatasetURL,
		HTTPTimeout:      5 * time.Minute,
		SourceLang:       hp.SourceLang,
		TargetLang:       hp.TargetLang,
		TrainSteps:       hp.NumTrainSteps,
		StepsPerStats:    hp.StepsPerStats,
		NumLayers:        hp.NumLayers,
		NumUnits:         hp.NumUnits,
		Dropout:          hp.Dropout,
		Metrics:          hp.Metrics,
		BatchSize:        hp.BatchSize,
		WatchCheckpoints: true,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.BaseDir == "" {
		c.BaseDir = domain.DefaultBaseDir
	}
	if c.Python == "" {
		return fmt.Errorf("python interpreter is required")
	}
	if c.TrainerModule == "" {
		return fmt.Errorf("trainer module is required")
	}
	if c.DatasetURL == "" {
		c.DatasetURL = domain.DefaultDatasetURL
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive")
	}
	return c.Hyperparams().Validate()
}

// Workspace returns the directory layout derived from the base dir.
func (c *Config) Workspace() domain.Workspace {
	return domain.NewWorkspace(c.BaseDir)
}

// Hyperparams assembles the trainer hyperparameters from the config.
func (c *Config) Hyperparams() domain.Hyperparams {
	return domain.Hyperparams{
		SourceLang:    c.SourceLang,
		TargetLang:    c.TargetLang,
		NumTrainSteps: c.TrainSteps,
		StepsPerStats: c.StepsPerStats,
		NumLayers:     c.NumLayers,
		NumUnits:      c.NumUnits,
		Dropout:       c.Dropout,
		Metrics:       c.Metrics,
		BatchSize:     c.BatchSize,
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
