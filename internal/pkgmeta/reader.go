package pkgmeta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sambhavKhanna/gemini-cli/internal/version"
)

// ManifestFilename is the npm manifest placed next to the executable by a
// global install.
const ManifestFilename = "package.json"

// Identity is a read-only snapshot of the installed package manifest,
// fetched fresh on each call.
type Identity struct {
	// Name is the full package name as published, e.g. "@google/gemini-cli".
	Name string `json:"name"`
	// Version is the installed semantic version.
	Version string `json:"version"`
	// DisplayName is the human-readable tool name used in notices.
	// Derived from Name when the manifest omits it.
	DisplayName string `json:"displayName"`
}

// Reader supplies the identity of the running tool.
type Reader interface {
	// Identity returns the package identity, or nil when none is available.
	Identity(ctx context.Context) (*Identity, error)
}

// FileReader reads the identity from the npm manifest installed next to the
// running executable.
type FileReader struct {
	// Path overrides manifest discovery. Empty means next to the executable.
	Path string
}

// Identity reads and parses the manifest. A missing manifest is not an
// error; it returns a nil identity so callers can treat it as "nothing to
// check" or "nothing to update".
func (r *FileReader) Identity(_ context.Context) (*Identity, error) {
	path := r.Path
	if path == "" {
		executable, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("locate executable: %w", err)
		}

		path = filepath.Join(filepath.Dir(executable), ManifestFilename)
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal(contents, &identity); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	if identity.Version == "" {
		identity.Version = version.Short()
	}

	if identity.DisplayName == "" {
		identity.DisplayName = DisplayNameFromPackage(identity.Name)
	}

	return &identity, nil
}

// DisplayNameFromPackage turns a published package name into a
// human-readable tool name: "@google/gemini-cli" becomes "Gemini CLI".
func DisplayNameFromPackage(name string) string {
	base := name
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}

	words := strings.Split(base, "-")
	for i, word := range words {
		if word == "" {
			continue
		}

		if strings.EqualFold(word, "cli") {
			words[i] = "CLI"
			continue
		}

		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.TrimSpace(strings.Join(words, " "))
}
