package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFetchLatest retrieves the version from the dist-tag endpoint,
// including scoped package names.
func TestFetchLatest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/@google/gemini-cli/latest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "@google/gemini-cli", "version": "2.0.0"}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL)
	require.NoError(t, err)

	latest, err := client.FetchLatest(context.Background(), "@google/gemini-cli")
	require.NoError(t, err)
	require.Equal(t, "2.0.0", latest)
}

// TestFetchLatestErrors covers missing names, non-OK statuses, malformed
// documents, and empty versions.
func TestFetchLatestErrors(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/missing/latest", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	mux.HandleFunc("/garbage/latest", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})
	mux.HandleFunc("/empty/latest", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name": "empty"}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewHTTPClient(server.URL)
	require.NoError(t, err)

	ctx := context.Background()

	_, err = client.FetchLatest(ctx, "")
	require.ErrorIs(t, err, errNameRequired)

	_, err = client.FetchLatest(ctx, "missing")
	require.ErrorIs(t, err, errBadHTTPStatus)

	_, err = client.FetchLatest(ctx, "garbage")
	require.Error(t, err)

	_, err = client.FetchLatest(ctx, "empty")
	require.ErrorIs(t, err, errEmptyVersion)
}

// TestFetchLatestContextCancel ensures an already-cancelled context aborts the query.
func TestFetchLatestContextCancel(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"version": "1.0.0"}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.FetchLatest(ctx, "gemini-cli")
	require.Error(t, err)
}
