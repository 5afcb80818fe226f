package checker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/sambhavKhanna/gemini-cli/internal/config"
	"github.com/sambhavKhanna/gemini-cli/internal/logger"
	"github.com/sambhavKhanna/gemini-cli/internal/pkgmeta"
	"github.com/sambhavKhanna/gemini-cli/internal/registry"
)

// Options controls a single update check.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Metadata overrides the identity source. Defaults to the installed manifest.
	Metadata pkgmeta.Reader
	// Registry overrides the registry client. Defaults to the configured HTTP registry.
	Registry registry.Client
	// Timeout overrides the configured bound on the registry query.
	Timeout time.Duration
}

// errCheckTimedOut indicates the registry did not answer within the bound.
var errCheckTimedOut = errors.New("update check timed out")

// Run performs a best-effort update check and returns the notice to show the
// user, or an empty string when there is nothing to report. Failures are
// logged as warnings and swallowed: an update check must never crash or
// block the host command.
func Run(ctx context.Context, opts *Options) string {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "update-check")

	// Contributors running from source are never nagged, and no
	// collaborator is consulted.
	if config.DevModeEnabled() {
		logger.Debug(ctx, "Development mode is enabled, skipping update check")
		return ""
	}

	notice, err := check(ctx, opts)
	if err != nil {
		logger.Warnf(ctx, "Update check failed: %v", err)
		return ""
	}

	return notice
}

// check runs the fallible part of the update check and reports the notice.
// An empty notice with a nil error means the tool is current or no
// information was available.
func check(ctx context.Context, opts *Options) (string, error) {
	// Load settings from configuration file (or defaults).
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return "", fmt.Errorf("load configuration: %w", err)
	}

	metadata := opts.Metadata
	if metadata == nil {
		metadata = &pkgmeta.FileReader{}
	}

	identity, err := metadata.Identity(ctx)
	if err != nil {
		return "", fmt.Errorf("read package identity: %w", err)
	}

	if identity == nil || identity.Name == "" || identity.Version == "" {
		logger.Debug(ctx, "Package identity is incomplete, skipping update check")
		return "", nil
	}

	client := opts.Registry
	if client == nil {
		client, err = registry.NewHTTPClient(cfg.RegistryURL)
		if err != nil {
			return "", fmt.Errorf("build registry client: %w", err)
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = cfg.CheckTimeout
	}

	latest, err := fetchLatestWithin(ctx, client, identity.Name, timeout)
	if err != nil {
		return "", fmt.Errorf("fetch latest version of %s: %w", identity.Name, err)
	}

	if !updateAvailable(ctx, identity.Version, latest) {
		logger.DebugKV(ctx, "No update available",
			"current", identity.Version, "latest", latest)

		return "", nil
	}

	return formatNotice(identity, latest, cfg.PackageManager), nil
}

// fetchLatestWithin races the registry query against a timer. Whichever
// settles first wins; a losing query is discarded, not cancelled, and the
// buffered channel keeps its eventual send from blocking.
func fetchLatestWithin(
	ctx context.Context,
	client registry.Client,
	name string,
	timeout time.Duration,
) (string, error) {
	type queryResult struct {
		latest string
		err    error
	}

	results := make(chan queryResult, 1)

	go func() {
		latest, err := client.FetchLatest(ctx, name)
		results <- queryResult{latest: latest, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-results:
		return result.latest, result.err
	case <-timer.C:
		return "", errCheckTimedOut
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// updateAvailable reports whether latest is strictly newer than current in
// semantic version order. A current version that does not parse as semver is
// treated as a development build and never triggers a notice.
func updateAvailable(ctx context.Context, current, latest string) bool {
	if latest == "" {
		return false
	}

	currentVersion, err := semver.NewVersion(current)
	if err != nil {
		logger.DebugKV(ctx, "Current version is not semver, treating as development build",
			"version", current)

		return false
	}

	latestVersion, err := semver.NewVersion(latest)
	if err != nil {
		logger.WarnKV(ctx, "Registry returned a version that is not semver",
			"version", latest)

		return false
	}

	return latestVersion.GreaterThan(currentVersion)
}

// formatNotice renders the user-facing update message with the manual
// update instruction.
func formatNotice(identity *pkgmeta.Identity, latest, manager string) string {
	return fmt.Sprintf("%s update available! %s → %s\nRun %s install -g %s to update",
		identity.DisplayName, identity.Version, latest, manager, identity.Name)
}
