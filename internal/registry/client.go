package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
)

// Client answers "what is the latest published version of package X".
// It is injected into services so tests run without real network access.
type Client interface {
	// FetchLatest returns the latest published version of the named package.
	// It may fail or hang; callers bound the wait themselves.
	FetchLatest(ctx context.Context, name string) (string, error)
}

var (
	// errNameRequired is returned when a package name is not provided.
	errNameRequired = errors.New("package name must be provided")
	// errBadHTTPStatus is returned on any non-OK registry response.
	errBadHTTPStatus = errors.New("unexpected http status")
	// errEmptyVersion is returned when the registry document carries no version.
	errEmptyVersion = errors.New("registry returned an empty version")
)

// HTTPClient queries an npm-style registry over HTTP. The latest published
// version of a package lives at <base>/<name>/latest.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// Option configures the registry client.
type Option func(*HTTPClient)

// WithHTTPClient overrides the underlying HTTP client, primarily for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewHTTPClient builds a registry client for the provided base URL.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse registry URL: %w", err)
	}

	client := &HTTPClient{
		baseURL:    parsed,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// FetchLatest implements Client against the npm registry dist-tag endpoint.
func (c *HTTPClient) FetchLatest(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", errNameRequired
	}

	// Copy the base URL; path.Join normalizes duplicate slashes and keeps
	// scoped package names ("@scope/name") intact.
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, name, "latest")
	finalURL := endpoint.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, finalURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("build registry request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("query registry: %w", err)
	}

	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s, %s: %w", finalURL, response.Status, errBadHTTPStatus)
	}

	var manifest struct {
		Version string `json:"version"`
	}

	if err = json.NewDecoder(response.Body).Decode(&manifest); err != nil {
		return "", fmt.Errorf("decode registry response: %w", err)
	}

	if manifest.Version == "" {
		return "", errEmptyVersion
	}

	return manifest.Version, nil
}
