package applier

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// ProcessRunner launches a command and waits for its terminal event,
// settling exactly once with the exit code and the spawn error as distinct
// outcomes: a nonzero exit code is not a runner error.
type ProcessRunner interface {
	Run(ctx context.Context, name string, args ...string) (int, error)
}

// execRunner spawns processes with the parent's standard streams attached so
// the user sees installer output live.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	// Spawn-level failure, e.g. executable not found.
	return -1, err
}
