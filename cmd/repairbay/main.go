package main

import (
	"os"

	"github.com/spf13/cobra"

	"repairbay/internal/interfaces/cli/migrate"
	"repairbay/internal/interfaces/cli/server"
	"repairbay/internal/interfaces/cli/sweep"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "repairbay",
		Short: "RepairBay - repair shop job tracking",
		Long:  `RepairBay tracks repair jobs from intake through pickup, with customer deduplication and data retention enforcement.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		sweep.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
