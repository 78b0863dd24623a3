package main

import (
	"os"

	"github.com/spf13/cobra"

	"paperdesk/internal/interfaces/cli/migrate"
	"paperdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paperdesk",
		Short: "Paperdesk - exam paper marketplace",
		Long:  `Paperdesk serves a catalog of priced exam papers with purchase and download entitlements.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
