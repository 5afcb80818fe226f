package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sambhavKhanna/gemini-cli/internal/logger"
	"github.com/sambhavKhanna/gemini-cli/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// logLevel optionally raises or lowers diagnostic verbosity.
	logLevel string

	// rootCmd represents the base command for checking and applying updates.
	rootCmd = &cobra.Command{
		Use:   "gemini-cli",
		Short: "Check for and apply updates of the globally installed tool",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if logLevel == "" {
				return
			}

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}
		},
	}
)

// Execute runs the gemini-cli CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(checkCmd, updateCmd)
}
