package ports

import "github.com/nmtkit/nmtlaunch/internal/domain"

// WorkspacePreparer creates the launcher's directory tree on disk.
type WorkspacePreparer interface {
	// Prepare ensures the model directory exists, creating missing
	// parents. It is idempotent: an existing tree is left untouched.
	Prepare(ws domain.Workspace) error
}
