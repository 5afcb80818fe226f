// Package checker answers whether a newer version of the tool is published.
//
// It reads the installed package identity, queries the registry for the
// latest version raced against a fixed timeout, and compares semantic
// versions. The result is an optional human-readable notice; every failure
// along the way is logged as a warning and reported as "no update" so the
// check can never break the host command.
package checker
