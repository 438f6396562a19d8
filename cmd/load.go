package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rhkp/tpcds-util/internal/loader"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load generated data into the database",
}

var loadDataCmd = &cobra.Command{
	Use:   "data",
	Short: "Bulk-load .dat files from a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cfg, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer mgr.Close()

		dir, _ := cmd.Flags().GetString("data-dir")
		if dir == "" {
			dir = cfg.OutputDir
		}
		batch, _ := cmd.Flags().GetInt("batch-size")

		l := loader.New(mgr)
		l.Progress = true
		if batch > 0 {
			l.BatchSize = batch
		}

		res, err := l.LoadDir(cmd.Context(), dir)
		if err != nil {
			return err
		}
		color.Green("✅ Loaded %d rows into %d tables from %s", res.Rows, res.Tables, dir)
		return nil
	},
}

var loadTruncateCmd = &cobra.Command{
	Use:   "truncate",
	Short: "Empty all benchmark tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force && !confirm("Delete all rows from every benchmark table?") {
			color.Yellow("Aborted")
			return nil
		}

		mgr, _, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer mgr.Close()

		if err := loader.New(mgr).Truncate(cmd.Context()); err != nil {
			return err
		}
		color.Green("✅ All tables truncated")
		return nil
	},
}

func init() {
	loadDataCmd.Flags().String("data-dir", "", "Directory containing .dat files")
	loadDataCmd.Flags().Int("batch-size", 0, "Rows per insert batch")
	loadTruncateCmd.Flags().BoolP("force", "f", false, "Skip confirmation")

	loadCmd.AddCommand(loadDataCmd, loadTruncateCmd)
	rootCmd.AddCommand(loadCmd)
}
