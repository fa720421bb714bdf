package main

import (
	"os"

	"github.com/spf13/cobra"

	"twoloom/internal/interfaces/cli/migrate"
	"twoloom/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "twoloom",
		Short: "Two Loom - studio site backend",
		Long:  `Two Loom serves the studio's public portfolio site and admin dashboard API, with built-in migration and seeding tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
