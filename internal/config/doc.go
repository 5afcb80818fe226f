// Package config loads and persists tool settings from a YAML file.
//
// Settings cover the package registry URL, the package manager executable
// used for global installs, and the update check timeout. A missing default
// settings file is not an error; stock defaults are used instead. The DEV
// environment flag gate lives here as well.
package config
