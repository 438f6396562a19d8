package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rhkp/tpcds-util/internal/config"
	"github.com/rhkp/tpcds-util/internal/database"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Inspect the configured database",
}

var dbTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Test database connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cfg, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer mgr.Close()

		color.Green("✅ Connected to %s database '%s' at %s:%d",
			cfg.Database.Provider, cfg.Database.Name,
			cfg.Database.Host, cfg.Database.Port)
		return nil
	},
}

var dbInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show server version and connection details",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cfg, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer mgr.Close()

		version, err := mgr.ServerVersion(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Provider: %s\n", cfg.Database.Provider)
		fmt.Printf("Server:   %s\n", version)
		fmt.Printf("Database: %s\n", cfg.Database.Name)
		fmt.Printf("User:     %s\n", cfg.Database.User)
		return nil
	},
}

// openDatabase is the shared connect path for all database-touching commands.
func openDatabase(cmd *cobra.Command) (*database.Manager, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	mgr, err := database.Open(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	return mgr, cfg, nil
}

func init() {
	dbCmd.AddCommand(dbTestCmd, dbInfoCmd)
	rootCmd.AddCommand(dbCmd)
}
