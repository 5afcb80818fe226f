package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sambhavKhanna/gemini-cli/internal/service/applier"
)

// updateCmd installs the latest published version via the package manager.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Install the latest published version",
	Long:  "Install the latest published version of the tool globally via the configured package manager. Installer output streams to the terminal; a failed install is reported with its exit code.",
	RunE: func(_ *cobra.Command, _ []string) error {
		// Setup graceful shutdown handling.
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		return applier.Run(ctx, &applier.Options{ConfigPath: configPath})
	},
}
