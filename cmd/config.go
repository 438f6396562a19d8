package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rhkp/tpcds-util/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tpcds-util configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		path, _ := config.Path()
		color.Cyan("Config file: %s", path)
		fmt.Println()
		fmt.Printf("database.provider: %s\n", cfg.Database.Provider)
		fmt.Printf("database.host:     %s\n", cfg.Database.Host)
		fmt.Printf("database.port:     %d\n", cfg.Database.Port)
		fmt.Printf("database.name:     %s\n", cfg.Database.Name)
		fmt.Printf("database.user:     %s\n", cfg.Database.User)
		fmt.Printf("database.schema:   %s\n", cfg.Database.Schema)
		fmt.Printf("database.sslmode:  %s\n", cfg.Database.SSLMode)
		fmt.Printf("kit_path:          %s\n", cfg.KitPath)
		fmt.Printf("output_dir:        %s\n", cfg.OutputDir)
		fmt.Printf("default_scale:     %d\n", cfg.DefaultScale)

		if cfg.Database.Password != "" {
			fmt.Println("database.password: ********")
		}
		color.Yellow("Password can also be supplied via %s", config.PasswordEnv)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one configuration value and save it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		color.Green("✅ %s = %s", args[0], args[1])
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		path, _ := config.Path()
		color.Green("✅ Wrote %s", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
