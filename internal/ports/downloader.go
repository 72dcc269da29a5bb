package ports

import "context"

// Downloader populates a target directory with the raw corpus files.
// The launcher does not inspect what was written; the trainer's own file
// handling is the arbiter of completeness.
type Downloader interface {
	// Download fetches the dataset into dir, creating it if needed.
	Download(ctx context.Context, dir string) error
}
