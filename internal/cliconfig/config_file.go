package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	BaseDir       string `toml:"base_dir"`
	Python        string `toml:"python"`
	TrainerModule string `toml:"trainer_module"`
	DatasetURL    string `toml:"dataset_url"`
	HTTPTimeout   string `toml:"http_timeout"`

	SourceLang string `toml:"src"`
	TargetLang string `toml:"tgt"`

	TrainSteps    int     `toml:"train_steps"`
	StepsPerStats int     `toml:"steps_per_stats"`
	NumLayers     int     `toml:"num_layers"`
	NumUnits      int     `toml:"num_units"`
	Dropout       float64 `toml:"dropout"`
	Metrics       string  `toml:"metrics"`
	BatchSize     int     `toml:"batch_size"`

	Download         *bool `toml:"download"`
	WatchCheckpoints *bool `toml:"watch_checkpoints"`
	DryRun           *bool `toml:"dry_run"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.nmtlaunch/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".nmtlaunch", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("base-dir", fc.BaseDir, &cfg.BaseDir)
	s.setString("python", fc.Python, &cfg.Python)
	s.setString("trainer-module", fc.TrainerModule, &cfg.TrainerModule)
	s.setString("dataset-url", fc.DatasetURL, &cfg.DatasetURL)
	s.setString("src", fc.SourceLang, &cfg.SourceLang)
	s.setString("tgt", fc.TargetLang, &cfg.TargetLang)
	s.setString("metrics", fc.Metrics, &cfg.Metrics)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setInt("train-steps", fc.TrainSteps, &cfg.TrainSteps)
	s.setInt("steps-per-stats", fc.StepsPerStats, &cfg.StepsPerStats)
	s.setInt("num-layers", fc.NumLayers, &cfg.NumLayers)
	s.setInt("num-units", fc.NumUnits, &cfg.NumUnits)
	s.setInt("batch-size", fc.BatchSize, &cfg.BatchSize)

	s.setFloat("dropout", fc.Dropout, &cfg.Dropout)

	s.setBool("download", fc.Download, &cfg.Download)
	s.setBool("watch-checkpoints", fc.WatchCheckpoints, &cfg.WatchCheckpoints)
	s.setBool("dry-run", fc.DryRun, &cfg.DryRun)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
