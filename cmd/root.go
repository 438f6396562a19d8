package cmd

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "0.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "tpcds-util",
	Short: "Generate, load and manage TPC-DS benchmark data",
	Long: `tpcds-util manages the lifecycle of a TPC-DS benchmark database:

- generate data with the built-in synthetic generator or the official dsdgen
- create and drop the benchmark schema
- bulk-load generated flat files
- inspect connection and table status

Database Support:
- PostgreSQL
- MySQL
- SQLite (embedded, handy for smoke tests)`,
	Version: Version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ~/.tpcds-util/config.yaml)")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".tpcds-util"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("TPCDS")
	viper.AutomaticEnv()

	// Missing config file is fine; defaults apply.
	viper.ReadInConfig()
}
