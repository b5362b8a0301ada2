package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"search-funnel/pkg/config"
	"search-funnel/pkg/di"
	"search-funnel/pkg/logger"
)

var envFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "funnelctl",
		Short:         "Operator tools for the search funnel",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment from this file instead of ./.env")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCategoriesCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(deleteBlogCmd())
	rootCmd.AddCommand(deleteSearchCmd())
	rootCmd.AddCommand(auditCmd())
	rootCmd.AddCommand(purgeEventsCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	err := rootCmd.Execute()
	logger.Close()
	if err != nil {
		Error("%v", err)
		os.Exit(1)
	}
}

// openContainer connects to the database only; the CLI never starts the
// tracking worker or the scheduler.
func openContainer() (*di.Container, error) {
	cfg, err := config.LoadConfigFrom(envFile)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Log.Dir, false); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	container := di.NewContainer(cfg)
	if err := container.InitializeData(); err != nil {
		return nil, err
	}
	return container, nil
}
