package ports

import (
	"context"

	"github.com/nmtkit/nmtlaunch/internal/domain"
)

// Trainer invokes the external training entry point and blocks until it
// exits. Implementations spawn the framework process; the launcher itself
// never interprets training progress or results.
type Trainer interface {
	// Train runs the entry point with the given hyperparameters rendered
	// against the workspace paths. A non-zero process exit is returned as
	// a *domain.TrainExitError; other errors mean the process could not
	// be run at all.
	Train(ctx context.Context, ws domain.Workspace, hp domain.Hyperparams) error

	// Command returns the argv Train would spawn, for dry runs and logs.
	Command(ws domain.Workspace, hp domain.Hyperparams) []string
}
