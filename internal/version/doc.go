// Package version exposes build metadata for the tool.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags and default to sensible values for local builds. The version
// also serves as the fallback identity version when the installed package
// manifest omits one.
package version
