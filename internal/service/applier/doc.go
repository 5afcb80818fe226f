// Package applier installs the latest published version of the tool by
// delegating to the system package manager's global-install command.
//
// The installer subprocess inherits the parent's standard streams and its
// outcome is surfaced to the caller: a nonzero exit code becomes an
// ExitCodeError, a spawn failure propagates the underlying error. Concurrent
// invocations are not coordinated; each spawns its own installer.
package applier
