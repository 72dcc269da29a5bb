// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [Trainer]: Invokes the external training entry point
//   - [Downloader]: Populates the data directory with the corpus
//   - [WorkspacePreparer]: Creates the output directory tree
//   - [Logger]: Structured logging abstraction
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement these interfaces
// with concrete implementations (os/exec, net/http, zerolog, etc.).
//
// This separation enables:
//   - Testing launch orchestration with fake trainers and downloaders
//   - Swapping infrastructure without changing launch logic
//   - Clear boundaries and dependency direction
package ports
