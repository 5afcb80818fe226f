package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sambhavKhanna/gemini-cli/internal/service/checker"
)

// checkCmd queries the registry and prints a notice when a newer version exists.
// The check is best-effort: it prints nothing and still exits zero when the
// registry is unreachable or the tool is current.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a newer version is published",
	Long:  "Query the package registry for the latest published version of the installed tool and print an update notice when one is available. The check is skipped entirely when the DEV environment flag is set.",
	Run: func(cmd *cobra.Command, _ []string) {
		// Setup graceful shutdown handling.
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		notice := checker.Run(ctx, &checker.Options{ConfigPath: configPath})
		if notice != "" {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), notice)
		}
	},
}
