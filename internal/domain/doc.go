// Package domain contains the core domain entities and value objects for
// nmtlaunch.
//
// This package represents the innermost layer of the Clean Architecture. It
// has no dependencies on infrastructure concerns (process execution, HTTP,
// file system, logging) and contains only pure launcher logic.
//
// # Entities
//
//   - [Workspace]: The two-level directory layout (model dir, data dir) and
//     the corpus/vocabulary path prefixes derived from it
//   - [Hyperparams]: The training configuration handed to the external
//     framework, rendered to its command-line flags
//   - [Checkpoint]: A model checkpoint observed in the output directory
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
