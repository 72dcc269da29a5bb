package domain

import (
	"fmt"
	"strconv"
)

// Hyperparams is the training configuration passed through to the external
// framework. The launcher never interprets these values; it only renders
// them as command-line flags.
type Hyperparams struct {
	SourceLang string
	TargetLang string

	NumTrainSteps int
	StepsPerStats int
	NumLayers     int
	NumUnits      int
	Dropout       float64
	Metrics       string
	BatchSize     int
}

// DefaultHyperparams returns the stock IWSLT'15 vi-en configuration.
func DefaultHyperparams() Hyperparams {
	return Hyperparams{
		SourceLang:    "vi",
		TargetLang:    "en",
		NumTrainSteps: 12000,
		StepsPerStats: 100,
		NumLayers:     2,
		NumUnits:      128,
		Dropout:       0.2,
		Metrics:       "bleu",
		BatchSize:     32,
	}
}

// Validate checks the hyperparameters for values the external framework
// would reject anyway, so misconfiguration fails before a process spawn.
func (h Hyperparams) Validate() error {
	if h.SourceLang == "" || h.TargetLang == "" {
		return fmt.Errorf("%w: source and target languages are required", ErrInvalidConfig)
	}
	if h.NumTrainSteps <= 0 {
		return fmt.Errorf("%w: train steps must be positive", ErrInvalidConfig)
	}
	if h.StepsPerStats <= 0 {
		return fmt.Errorf("%w: stats interval must be positive", ErrInvalidConfig)
	}
	if h.NumLayers <= 0 || h.NumUnits <= 0 {
		return fmt.Errorf("%w: model depth and width must be positive", ErrInvalidConfig)
	}
	if h.Dropout < 0 || h.Dropout >= 1 {
		return fmt.Errorf("%w: dropout must be in [0, 1)", ErrInvalidConfig)
	}
	if h.Metrics == "" {
		return fmt.Errorf("%w: evaluation metric is required", ErrInvalidConfig)
	}
	if h.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive", ErrInvalidConfig)
	}
	return nil
}

// Args renders the trainer command-line flags for the given workspace.
// Flag order follows the framework's documented invocation.
func (h Hyperparams) Args(ws Workspace) []string {
	return []string{
		"--src=" + h.SourceLang,
		"--tgt=" + h.TargetLang,
		"--vocab_prefix=" + ws.VocabPrefix(),
		"--train_prefix=" + ws.TrainPrefix(),
		"--dev_prefix=" + ws.DevPrefix(),
		"--test_prefix=" + ws.TestPrefix(),
		"--out_dir=" + ws.ModelDir(),
		"--num_train_steps=" + strconv.Itoa(h.NumTrainSteps),
		"--steps_per_stats=" + strconv.Itoa(h.StepsPerStats),
		"--num_layers=" + strconv.Itoa(h.NumLayers),
		"--num_units=" + strconv.Itoa(h.NumUnits),
		"--dropout=" + strconv.FormatFloat(h.Dropout, 'g', -1, 64),
		"--metrics=" + h.Metrics,
		"--batch_size=" + strconv.Itoa(h.BatchSize),
	}
}
