package ports

import "context"

// CheckpointWatcher observes the trainer's output directory and reports
// checkpoints as the external framework writes them. Purely observational;
// it never affects the training run.
type CheckpointWatcher interface {
	// Start begins watching until ctx is canceled or Stop is called.
	Start(ctx context.Context) error

	// Stop halts watching and waits for the watch loop to exit.
	Stop()
}
