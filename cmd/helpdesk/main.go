package main

import (
	"os"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/bot"
	"helpdesk/internal/interfaces/cli/migrate"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - a Discord support ticket bot",
		Long:  `Helpdesk runs private support ticket channels on Discord: creation, message capture, rating-driven closure, and HTML transcript archival.`,
	}

	rootCmd.AddCommand(
		bot.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
