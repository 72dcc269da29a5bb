package fs

import (
	"os"
	"sort"

	"github.com/nmtkit/nmtlaunch/internal/domain"
)

// DirPreparer implements ports.WorkspacePreparer on the local filesystem.
type DirPreparer struct{}

// NewDirPreparer creates a new DirPreparer.
func NewDirPreparer() *DirPreparer {
	return &DirPreparer{}
}

// Prepare creates the model directory and any missing parents.
// Only the model directory is created eagerly; the data directory is
// created by the download step when one runs, matching the original
// launcher behavior.
func (DirPreparer) Prepare(ws domain.Workspace) error {
	return os.MkdirAll(ws.ModelDir(), 0o755)
}

// ListCheckpoints scans dir for checkpoints already written by the trainer,
// sorted by ascending training step. A missing directory yields an empty
// list, not an error.
func ListCheckpoints(dir string) ([]domain.Checkpoint, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var cps []domain.Checkpoint
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if cp, ok := domain.ParseCheckpoint(e.Name()); ok {
			cps = append(cps, cp)
		}
	}
	sort.Slice(cps, func(i, j int) bool { return cps[i].Step < cps[j].Step })
	return cps, nil
}
