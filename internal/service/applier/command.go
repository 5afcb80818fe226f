package applier

import (
	"context"
	"errors"
	"fmt"

	"github.com/sambhavKhanna/gemini-cli/internal/config"
	"github.com/sambhavKhanna/gemini-cli/internal/logger"
	"github.com/sambhavKhanna/gemini-cli/internal/pkgmeta"
)

// Options controls a single update attempt.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Metadata overrides the identity source. Defaults to the installed manifest.
	Metadata pkgmeta.Reader
	// Runner overrides the process runner. Defaults to os/exec with inherited stdio.
	Runner ProcessRunner
}

// ExitCodeError reports an installer process that ran but terminated with a
// nonzero exit code.
type ExitCodeError struct {
	// Manager is the package manager executable that was invoked.
	Manager string
	// Code is the process exit code.
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("%s install exited with code %d", e.Manager, e.Code)
}

// errIdentityRequired is returned when the identity source fails outright.
var errIdentityRequired = errors.New("package identity is unavailable")

// Run installs the latest published version of the tool globally via the
// configured package manager. Unlike the update check, failures here are
// surfaced: the user asked for the update and must learn when it did not
// happen.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "update")

	// Load settings from configuration file (or defaults).
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	metadata := opts.Metadata
	if metadata == nil {
		metadata = &pkgmeta.FileReader{}
	}

	identity, err := metadata.Identity(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errIdentityRequired, err)
	}

	if identity == nil || identity.Name == "" {
		logger.Info(ctx, "Package name is unknown, nothing to update")
		return nil
	}

	runner := opts.Runner
	if runner == nil {
		runner = execRunner{}
	}

	logger.InfoKV(ctx, "Installing latest published version",
		"package", identity.Name, "manager", cfg.PackageManager)

	exitCode, err := runner.Run(ctx, cfg.PackageManager, "install", "-g", identity.Name)
	if err != nil {
		return fmt.Errorf("start %s: %w", cfg.PackageManager, err)
	}

	if exitCode != 0 {
		return &ExitCodeError{Manager: cfg.PackageManager, Code: exitCode}
	}

	logger.InfoKV(ctx, "Update applied", "package", identity.Name)

	return nil
}
