package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds settings shared by the update check and update apply commands.
type Config struct {
	// RegistryURL is the base URL of the package registry queried for the
	// latest published version.
	RegistryURL string `yaml:"registry_url"`
	// PackageManager is the executable invoked to perform the global install.
	PackageManager string `yaml:"package_manager"`
	// CheckTimeout bounds how long a version check may wait for the registry.
	CheckTimeout time.Duration `yaml:"check_timeout"`
}

const (
	// DefaultConfigFilename is the default filename for tool settings.
	DefaultConfigFilename = "gemini-cli-settings.yaml"

	// DefaultRegistryURL is the registry queried when no other is configured.
	DefaultRegistryURL = "https://registry.npmjs.org"

	// DefaultPackageManager performs global installs when no other is configured.
	DefaultPackageManager = "npm"

	// DefaultCheckTimeout bounds the registry query during an update check.
	DefaultCheckTimeout = 2 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// DevModeEnvVar disables update checks entirely when set to a truthy value,
	// so contributors running from source are not nagged about releases.
	DevModeEnvVar = "DEV"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
)

// Default returns a configuration populated with the stock registry,
// package manager, and check timeout.
func Default() *Config {
	return &Config{
		RegistryURL:    DefaultRegistryURL,
		PackageManager: DefaultPackageManager,
		CheckTimeout:   DefaultCheckTimeout,
	}
}

// Load reads configuration from the provided path and validates essential fields.
// When no path is given and the default settings file does not exist,
// the default configuration is returned.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for formatting and fills in defaults
// for omitted fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.RegistryURL == "" {
		cfg.RegistryURL = DefaultRegistryURL
	}

	if _, err := url.ParseRequestURI(cfg.RegistryURL); err != nil {
		return fmt.Errorf("invalid registry URL: %w", err)
	}

	if cfg.PackageManager == "" {
		cfg.PackageManager = DefaultPackageManager
	}

	if cfg.CheckTimeout <= 0 {
		cfg.CheckTimeout = DefaultCheckTimeout
	}

	return nil
}

// DevModeEnabled reports whether the development mode environment flag is set
// to a truthy value ("1", "true", etc.).
func DevModeEnabled() bool {
	enabled, err := strconv.ParseBool(os.Getenv(DevModeEnvVar))

	return err == nil && enabled
}
