// Package app wires the ports together into the launch pipeline.
//
// The pipeline is strictly sequential: ensure the workspace exists, run the
// optional dataset download, then hand off to the external trainer and wait
// for it. The only concurrent piece is the checkpoint watcher, which is
// observational and never feeds back into the pipeline.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nmtkit/nmtlaunch/internal/domain"
	"github.com/nmtkit/nmtlaunch/internal/ports"
)

// LauncherConfig contains configuration for a single launch.
type LauncherConfig struct {
	Workspace   domain.Workspace
	Hyperparams domain.Hyperparams

	// Download enables the dataset download step before training.
	Download bool

	// DryRun prints the trainer command line instead of executing it.
	DryRun bool
}

// Launcher orchestrates one training launch.
type Launcher struct {
	config     LauncherConfig
	preparer   ports.WorkspacePreparer
	downloader ports.Downloader
	trainer    ports.Trainer
	watcher    ports.CheckpointWatcher
	logger     ports.Logger

	// Stdout receives the dry-run command line. Defaults to os.Stdout.
	Stdout io.Writer
}

// NewLauncher creates a launcher with the given dependencies.
// watcher may be nil to disable checkpoint reporting.
func NewLauncher(
	config LauncherConfig,
	preparer ports.WorkspacePreparer,
	downloader ports.Downloader,
	trainer ports.Trainer,
	watcher ports.CheckpointWatcher,
	logger ports.Logger,
) *Launcher {
	return &Launcher{
		config:     config,
		preparer:   preparer,
		downloader: downloader,
		trainer:    trainer,
		watcher:    watcher,
		logger:     logger,
	}
}

// Run executes the launch pipeline and blocks until the trainer exits.
// The returned error is the trainer's, unless an earlier step could not
// even hand off to it.
func (l *Launcher) Run(ctx context.Context) error {
	ws := l.config.Workspace
	hp := l.config.Hyperparams

	if err := l.preparer.Prepare(ws); err != nil {
		return fmt.Errorf("prepare workspace: %w", err)
	}
	l.logger.Debug("workspace ready",
		ports.String("model_dir", ws.ModelDir()),
		ports.String("data_dir", ws.DataDir()))

	if l.config.Download {
		l.logger.Info("downloading dataset", ports.String("data_dir", ws.DataDir()))
		if err := l.downloader.Download(ctx, ws.DataDir()); err != nil {
			// The download's failure semantics belong to the download
			// step; training is attempted either way and the trainer's
			// own file handling reports what is missing.
			l.logger.Warn("dataset download failed", ports.Err(err))
		}
	}

	if l.config.DryRun {
		argv := l.trainer.Command(ws, hp)
		fmt.Fprintln(l.stdout(), strings.Join(argv, " "))
		return nil
	}

	if l.watcher != nil {
		if err := l.watcher.Start(ctx); err != nil {
			l.logger.Warn("checkpoint watcher disabled", ports.Err(err))
		} else {
			defer l.watcher.Stop()
		}
	}

	return l.trainer.Train(ctx, ws, hp)
}

func (l *Launcher) stdout() io.Writer {
	if l.Stdout != nil {
		return l.Stdout
	}
	return os.Stdout
}
