package domain

import "path/filepath"

// Directory layout constants. The launcher owns only this two-level tree;
// everything inside the two leaf directories is written by external tools.
const (
	DefaultBaseDir = "data/nmt"
	ModelDirName   = "nmt_model"
	DataDirName    = "nmt_data"
)

// Corpus file prefixes inside the data directory. The external framework
// appends ".<lang>" to each prefix to locate the paired files.
const (
	VocabPrefixName = "vocab"
	TrainPrefixName = "train"
	DevPrefixName   = "tst2012"
	TestPrefixName  = "tst2013"
)

// Workspace computes the directory layout from a single base path.
type Workspace struct {
	BaseDir string
}

// NewWorkspace creates a Workspace rooted at base, falling back to
// DefaultBaseDir when base is empty.
func NewWorkspace(base string) Workspace {
	if base == "" {
		base = DefaultBaseDir
	}
	return Workspace{BaseDir: base}
}

// ModelDir returns the trainer output directory.
func (w Workspace) ModelDir() string {
	return filepath.Join(w.BaseDir, ModelDirName)
}

// DataDir returns the corpus/vocabulary directory.
func (w Workspace) DataDir() string {
	return filepath.Join(w.BaseDir, DataDirName)
}

// VocabPrefix returns the vocabulary file prefix.
func (w Workspace) VocabPrefix() string {
	return filepath.Join(w.DataDir(), VocabPrefixName)
}

// TrainPrefix returns the training corpus prefix.
func (w Workspace) TrainPrefix() string {
	return filepath.Join(w.DataDir(), TrainPrefixName)
}

// DevPrefix returns the development (validation) corpus prefix.
func (w Workspace) DevPrefix() string {
	return filepath.Join(w.DataDir(), DevPrefixName)
}

// TestPrefix returns the test corpus prefix.
func (w Workspace) TestPrefix() string {
	return filepath.Join(w.DataDir(), TestPrefixName)
}
