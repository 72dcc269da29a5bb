package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (NMTLAUNCH_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("base-dir", os.Getenv("NMTLAUNCH_BASE_DIR"), &cfg.BaseDir)
	s.setString("python", os.Getenv("NMTLAUNCH_PYTHON"), &cfg.Python)
	s.setString("trainer-module", os.Getenv("NMTLAUNCH_TRAINER_MODULE"), &cfg.TrainerModule)
	s.setString("dataset-url", os.Getenv("NMTLAUNCH_DATASET_URL"), &cfg.DatasetURL)
	s.setString("src", os.Getenv("NMTLAUNCH_SRC"), &cfg.SourceLang)
	s.setString("tgt", os.Getenv("NMTLAUNCH_TGT"), &cfg.TargetLang)
	s.setString("metrics", os.Getenv("NMTLAUNCH_METRICS"), &cfg.Metrics)

	if err := s.setDuration("timeout", os.Getenv("NMTLAUNCH_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}

	if err := s.setIntFromString("train-steps", os.Getenv("NMTLAUNCH_TRAIN_STEPS"), &cfg.TrainSteps); err != nil {
		return err
	}
	if err := s.setIntFromString("steps-per-stats", os.Getenv("NMTLAUNCH_STEPS_PER_STATS"), &cfg.StepsPerStats); err != nil {
		return err
	}
	if err := s.setIntFromString("num-layers", os.Getenv("NMTLAUNCH_NUM_LAYERS"), &cfg.NumLayers); err != nil {
		return err
	}
	if err := s.setIntFromString("num-units", os.Getenv("NMTLAUNCH_NUM_UNITS"), &cfg.NumUnits); err != nil {
		return err
	}
	if err := s.setIntFromString("batch-size", os.Getenv("NMTLAUNCH_BATCH_SIZE"), &cfg.BatchSize); err != nil {
		return err
	}

	if err := s.setFloatFromString("dropout", os.Getenv("NMTLAUNCH_DROPOUT"), &cfg.Dropout); err != nil {
		return err
	}

	s.setBoolFromString("download", os.Getenv("NMTLAUNCH_DOWNLOAD"), &cfg.Download)
	s.setBoolFromString("watch-checkpoints", os.Getenv("NMTLAUNCH_WATCH_CHECKPOINTS"), &cfg.WatchCheckpoints)
	s.setBoolFromString("dry-run", os.Getenv("NMTLAUNCH_DRY_RUN"), &cfg.DryRun)

	return nil
}
