package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nmtkit/nmtlaunch/internal/domain"
	"github.com/nmtkit/nmtlaunch/internal/ports"
)

type fakePreparer struct {
	calls int
	err   error
}

func (p *fakePreparer) Prepare(ws domain.Workspace) error {
	p.calls++
	return p.err
}

type fakeDownloader struct {
	calls int
	dirs  []string
	err   error
	order *[]string
}

func (d *fakeDownloader) Download(ctx context.Context, dir string) error {
	d.calls++
	d.dirs = append(d.dirs, dir)
	if d.order != nil {
		*d.order = append(*d.order, "download")
	}
	return d.err
}

type fakeTrainer struct {
	calls  int
	err    error
	order  *[]string
	lastWS domain.Workspace
	lastHP domain.Hyperparams
}

func (tr *fakeTrainer) Train(ctx context.Context, ws domain.Workspace, hp domain.Hyperparams) error {
	tr.calls++
	tr.lastWS = ws
	tr.lastHP = hp
	if tr.order != nil {
		*tr.order = append(*tr.order, "train")
	}
	return tr.err
}

func (tr *fakeTrainer) Command(ws domain.Workspace, hp domain.Hyperparams) []string {
	return append([]string{"python", "-m", "nmt.nmt"}, hp.Args(ws)...)
}

type fakeWatcher struct {
	started  int
	stopped  int
	startErr error
}

func (w *fakeWatcher) Start(ctx context.Context) error {
	w.started++
	return w.startErr
}

func (w *fakeWatcher) Stop() {
	w.stopped++
}

type testLogger struct{}

func (testLogger) Debug(msg string, fields ...ports.Field) {}
func (testLogger) Info(msg string, fields ...ports.Field)  {}
func (testLogger) Warn(msg string, fields ...ports.Field)  {}
func (testLogger) Error(msg string, fields ...ports.Field) {}

func newLauncherForTest(cfg LauncherConfig, p *fakePreparer, d *fakeDownloader, tr *fakeTrainer, w *fakeWatcher) *Launcher {
	if w == nil {
		return NewLauncher(cfg, p, d, tr, nil, testLogger{})
	}
	return NewLauncher(cfg, p, d, tr, w, testLogger{})
}

func defaultLauncherConfig() LauncherConfig {
	return LauncherConfig{
		Workspace:   domain.NewWorkspace("data/nmt"),
		Hyperparams: domain.DefaultHyperparams(),
	}
}

func TestLauncher_Run_NoDownload(t *testing.T) {
	p := &fakePreparer{}
	d := &fakeDownloader{}
	tr := &fakeTrainer{}

	l := newLauncherForTest(defaultLauncherConfig(), p, d, tr, nil)
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if p.calls != 1 {
		t.Errorf("preparer called %d times, want 1", p.calls)
	}
	if d.calls != 0 {
		t.Errorf("downloader called %d times, want 0", d.calls)
	}
	if tr.calls != 1 {
		t.Errorf("trainer called %d times, want 1", tr.calls)
	}
	if got, want := tr.lastWS.ModelDir(), domain.NewWorkspace("data/nmt").ModelDir(); got != want {
		t.Errorf("trainer workspace = %v, want %v", got, want)
	}
	if tr.lastHP != domain.DefaultHyperparams() {
		t.Errorf("trainer hyperparams = %+v, want defaults", tr.lastHP)
	}
}

func TestLauncher_Run_WithDownload(t *testing.T) {
	var order []string
	cfg := defaultLauncherConfig()
	cfg.Download = true

	p := &fakePreparer{}
	d := &fakeDownloader{order: &order}
	tr := &fakeTrainer{order: &order}

	l := newLauncherForTest(cfg, p, d, tr, nil)
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if d.calls != 1 {
		t.Fatalf("downloader called %d times, want 1", d.calls)
	}
	if got, want := d.dirs[0], cfg.Workspace.DataDir(); got != want {
		t.Errorf("download dir = %v, want %v", got, want)
	}
	if len(order) != 2 || order[0] != "download" || order[1] != "train" {
		t.Errorf("execution order = %v, want [download train]", order)
	}
}

func TestLauncher_Run_DownloadFailureStillTrains(t *testing.T) {
	cfg := defaultLauncherConfig()
	cfg.Download = true

	p := &fakePreparer{}
	d := &fakeDownloader{err: errors.New("mirror unreachable")}
	tr := &fakeTrainer{}

	l := newLauncherForTest(cfg, p, d, tr, nil)
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if tr.calls != 1 {
		t.Errorf("trainer called %d times, want 1", tr.calls)
	}
}

func TestLauncher_Run_PrepareFailure(t *testing.T) {
	p := &fakePreparer{err: errors.New("read-only filesystem")}
	d := &fakeDownloader{}
	tr := &fakeTrainer{}

	l := newLauncherForTest(defaultLauncherConfig(), p, d, tr, nil)
	if err := l.Run(context.Background()); err == nil {
		t.Fatal("Run() expected error")
	}
	if tr.calls != 0 {
		t.Errorf("trainer called %d times after prepare failure, want 0", tr.calls)
	}
}

func TestLauncher_Run_TrainerErrorPropagates(t *testing.T) {
	p := &fakePreparer{}
	d := &fakeDownloader{}
	tr := &fakeTrainer{err: &domain.TrainExitError{Code: 2}}

	l := newLauncherForTest(defaultLauncherConfig(), p, d, tr, nil)
	err := l.Run(context.Background())

	var te *domain.TrainExitError
	if !errors.As(err, &te) || te.Code != 2 {
		t.Errorf("Run() error = %v, want TrainExitError with code 2", err)
	}
}

func TestLauncher_Run_DryRun(t *testing.T) {
	cfg := defaultLauncherConfig()
	cfg.DryRun = true

	p := &fakePreparer{}
	d := &fakeDownloader{}
	tr := &fakeTrainer{}

	l := newLauncherForTest(cfg, p, d, tr, nil)
	var out bytes.Buffer
	l.Stdout = &out

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if tr.calls != 0 {
		t.Errorf("trainer called %d times in dry run, want 0", tr.calls)
	}
	line := out.String()
	if !strings.Contains(line, "python -m nmt.nmt") {
		t.Errorf("dry-run output %q missing command prefix", line)
	}
	if !strings.Contains(line, "--num_train_steps=12000") {
		t.Errorf("dry-run output %q missing rendered flags", line)
	}
}

func TestLauncher_Run_Watcher(t *testing.T) {
	p := &fakePreparer{}
	d := &fakeDownloader{}
	tr := &fakeTrainer{}
	w := &fakeWatcher{}

	l := newLauncherForTest(defaultLauncherConfig(), p, d, tr, w)
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if w.started != 1 {
		t.Errorf("watcher started %d times, want 1", w.started)
	}
	if w.stopped != 1 {
		t.Errorf("watcher stopped %d times, want 1", w.stopped)
	}
}

func TestLauncher_Run_WatcherStartFailureStillTrains(t *testing.T) {
	p := &fakePreparer{}
	d := &fakeDownloader{}
	tr := &fakeTrainer{}
	w := &fakeWatcher{startErr: errors.New("inotify limit")}

	l := newLauncherForTest(defaultLauncherConfig(), p, d, tr, w)
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if tr.calls != 1 {
		t.Errorf("trainer called %d times, want 1", tr.calls)
	}
	if w.stopped != 0 {
		t.Errorf("watcher stopped %d times after failed start, want 0", w.stopped)
	}
}
