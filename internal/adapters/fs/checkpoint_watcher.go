package fs

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/nmtkit/nmtlaunch/internal/domain"
	"github.com/nmtkit/nmtlaunch/internal/ports"
)

// CheckpointWatcher implements ports.CheckpointWatcher with fsnotify.
// It watches the trainer's output directory and logs each checkpoint the
// framework saves, so long-running jobs show progress without tailing the
// trainer's own output.
type CheckpointWatcher struct {
	dir    string
	logger ports.Logger

	mu     sync.Mutex
	seen   map[string]bool
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCheckpointWatcher creates a watcher for the given output directory.
func NewCheckpointWatcher(dir string, logger ports.Logger) *CheckpointWatcher {
	return &CheckpointWatcher{
		dir:    dir,
		logger: logger,
		seen:   make(map[string]bool),
	}
}

// Start records checkpoints already on disk (a resumed run) and begins
// watching for new ones. The directory must exist.
func (w *CheckpointWatcher) Start(ctx context.Context) error {
	existing, err := ListCheckpoints(w.dir)
	if err != nil {
		return err
	}
	w.mu.Lock()
	for _, cp := range existing {
		w.seen[cp.Name] = true
	}
	w.mu.Unlock()
	if n := len(existing); n > 0 {
		last := existing[n-1]
		w.logger.Info("resuming from existing checkpoints",
			ports.Int("count", n),
			ports.Int64("last_step", last.Step))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go w.watchLoop(watchCtx, watcher)
	return nil
}

// Stop halts the watch loop and blocks until it exits.
func (w *CheckpointWatcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

func (w *CheckpointWatcher) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer w.wg.Done()
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cp, ok := domain.ParseCheckpoint(filepath.Base(event.Name))
			if !ok {
				continue
			}
			if !w.markSeen(cp.Name) {
				continue
			}
			w.logger.Info("checkpoint saved",
				ports.String("checkpoint", cp.Name),
				ports.Int64("step", cp.Step))

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("checkpoint watcher error", ports.Err(err))
		}
	}
}

// markSeen returns true the first time a checkpoint name is observed.
// The framework writes each checkpoint shard with several events; only the
// first parseable one is reported.
func (w *CheckpointWatcher) markSeen(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.seen[name] {
		return false
	}
	w.seen[name] = true
	return true
}
