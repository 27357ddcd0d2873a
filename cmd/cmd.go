package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dreamerjackson/moonbag/cmd/feed"
	"github.com/dreamerjackson/moonbag/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version.",
	Long:  "print version.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version.Printer(cmd.OutOrStdout())
	},
}

func Execute() {
	var rootCmd = &cobra.Command{
		Use:           "moonbag",
		Short:         "scrape crypto market tables into clean records.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(feed.FeedCmd, feed.ListCmd, feed.ParseCmd, versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
