package domain

import (
	"strconv"
	"strings"
)

// checkpointPrefix is the basename prefix the framework uses for saved
// model checkpoints in the output directory.
const checkpointPrefix = "translate.ckpt-"

// Checkpoint is a model checkpoint observed in the output directory.
type Checkpoint struct {
	// Name is the checkpoint basename without the shard suffix,
	// e.g. "translate.ckpt-12000".
	Name string

	// Step is the global training step encoded in the name.
	Step int64
}

// ParseCheckpoint extracts a Checkpoint from a file basename written by the
// trainer, e.g. "translate.ckpt-4000.index". Only the ".index" shard is
// accepted so each checkpoint is reported once, after its data shards.
func ParseCheckpoint(basename string) (Checkpoint, bool) {
	rest, ok := strings.CutPrefix(basename, checkpointPrefix)
	if !ok {
		return Checkpoint{}, false
	}
	stepStr, ok := strings.CutSuffix(rest, ".index")
	if !ok {
		return Checkpoint{}, false
	}
	step, err := strconv.ParseInt(stepStr, 10, 64)
	if err != nil {
		return Checkpoint{}, false
	}
	return Checkpoint{
		Name: checkpointPrefix + stepStr,
		Step: step,
	}, true
}
