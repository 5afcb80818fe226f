package applier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sambhavKhanna/gemini-cli/internal/pkgmeta"
)

// staticReader returns a fixed identity or error.
type staticReader struct {
	identity *pkgmeta.Identity
	err      error
}

func (r *staticReader) Identity(_ context.Context) (*pkgmeta.Identity, error) {
	return r.identity, r.err
}

// fakeRunner records the spawn and settles with a fixed outcome.
type fakeRunner struct {
	exitCode int
	err      error

	called bool
	name   string
	args   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (int, error) {
	f.called = true
	f.name = name
	f.args = args

	return f.exitCode, f.err
}

func identityFixture() *pkgmeta.Identity {
	return &pkgmeta.Identity{
		Name:        "@google/gemini-cli",
		Version:     "1.0.0",
		DisplayName: "Gemini CLI",
	}
}

// TestRunSuccess verifies the global-install invocation and the success path.
func TestRunSuccess(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	err := Run(context.Background(), &Options{
		Metadata: &staticReader{identity: identityFixture()},
		Runner:   runner,
	})

	require.NoError(t, err)
	require.True(t, runner.called)
	require.Equal(t, "npm", runner.name)
	require.Equal(t, []string{"install", "-g", "@google/gemini-cli"}, runner.args)
}

// TestRunNoPackageName resolves successfully without spawning anything.
func TestRunNoPackageName(t *testing.T) {
	t.Parallel()

	for _, identity := range []*pkgmeta.Identity{nil, {Version: "1.0.0"}} {
		runner := &fakeRunner{}
		err := Run(context.Background(), &Options{
			Metadata: &staticReader{identity: identity},
			Runner:   runner,
		})

		require.NoError(t, err)
		require.False(t, runner.called)
	}
}

// TestRunNonzeroExit surfaces an exit-code-bearing error.
func TestRunNonzeroExit(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{
		Metadata: &staticReader{identity: identityFixture()},
		Runner:   &fakeRunner{exitCode: 1},
	})

	require.Error(t, err)
	require.Contains(t, err.Error(), "1")

	var exitErr *ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.Code)
	require.Equal(t, "npm", exitErr.Manager)
}

// TestRunSpawnError propagates the underlying spawn failure.
func TestRunSpawnError(t *testing.T) {
	t.Parallel()

	spawnErr := errors.New("executable file not found")
	err := Run(context.Background(), &Options{
		Metadata: &staticReader{identity: identityFixture()},
		Runner:   &fakeRunner{exitCode: -1, err: spawnErr},
	})

	require.ErrorIs(t, err, spawnErr)
}

// TestRunMetadataError propagates identity fetch failures.
func TestRunMetadataError(t *testing.T) {
	t.Parallel()

	metaErr := errors.New("manifest unreadable")
	runner := &fakeRunner{}
	err := Run(context.Background(), &Options{
		Metadata: &staticReader{err: metaErr},
		Runner:   runner,
	})

	require.ErrorIs(t, err, metaErr)
	require.False(t, runner.called)
}

// TestExecRunnerExitCodes runs real processes to verify terminal-event mapping.
func TestExecRunnerExitCodes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	runner := execRunner{}

	// A command that exists everywhere the tests run.
	code, err := runner.Run(ctx, "go", "version")
	require.NoError(t, err)
	require.Equal(t, 0, code)

	// Spawn-level failure.
	_, err = runner.Run(ctx, "definitely-not-a-real-binary-3f9a")
	require.Error(t, err)
}
