// Package nmtlaunch launches neural machine translation training jobs
// against an external framework's command-line entry point.
//
// Example usage:
//
//	cfg := nmtlaunch.DefaultConfig()
//	cfg.Download = true
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := nmtlaunch.Run(context.Background(), cfg); err != nil {
//	    log.Fatal(err)
//	}
package nmtlaunch

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	execAdapter "github.com/nmtkit/nmtlaunch/internal/adapters/exec"
	fsAdapter "github.com/nmtkit/nmtlaunch/internal/adapters/fs"
	httpAdapter "github.com/nmtkit/nmtlaunch/internal/adapters/http"
	logAdapter "github.com/nmtkit/nmtlaunch/internal/adapters/log"
	"github.com/nmtkit/nmtlaunch/internal/app"
	"github.com/nmtkit/nmtlaunch/internal/cliconfig"
	"github.com/nmtkit/nmtlaunch/internal/domain"
	"github.com/nmtkit/nmtlaunch/internal/ports"
)

// Config holds the configuration for a training launch.
// Use DefaultConfig() to get a Config with the stock vi-en defaults.
type Config = cliconfig.Config

// DefaultConfig returns a Config with default values: the stock IWSLT'15
// vi-en run under data/nmt.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// ExitCode extracts the trainer exit code from an error returned by Run.
// Returns 0 for nil and 1 for errors that carry no code.
func ExitCode(err error) int {
	return domain.ExitCode(err)
}

// Logger returns the package-level zerolog logger used by the launcher.
func Logger() zerolog.Logger {
	return cliconfig.Logger()
}

// Run executes the launch pipeline with the given configuration: ensure the
// workspace directories exist, optionally download the dataset, then invoke
// the external training entry point and block until it exits.
// The configuration should be validated before calling Run.
func Run(ctx context.Context, cfg Config) error {
	return run(ctx, cfg, logAdapter.NewZerologAdapterWithLogger(cliconfig.Logger()))
}

// RunWithLogger is Run with a caller-supplied logger.
func RunWithLogger(ctx context.Context, cfg Config, logger zerolog.Logger) error {
	return run(ctx, cfg, logAdapter.NewZerologAdapterWithLogger(logger))
}

func run(ctx context.Context, cfg Config, logger ports.Logger) error {
	ws := cfg.Workspace()
	hp := cfg.Hyperparams()

	downloader := httpAdapter.NewDatasetDownloader(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.DatasetURL,
		domain.DatasetFiles(hp.SourceLang, hp.TargetLang),
		logger,
	)
	trainer := execAdapter.NewTrainer(cfg.Python, cfg.TrainerModule, logger)

	var watcher ports.CheckpointWatcher
	if cfg.WatchCheckpoints {
		watcher = fsAdapter.NewCheckpointWatcher(ws.ModelDir(), logger)
	}

	launcher := app.NewLauncher(
		app.LauncherConfig{
			Workspace:   ws,
			Hyperparams: hp,
			Download:    cfg.Download,
			DryRun:      cfg.DryRun,
		},
		fsAdapter.NewDirPreparer(),
		downloader,
		trainer,
		watcher,
		logger,
	)
	return launcher.Run(ctx)
}
