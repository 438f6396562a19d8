package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show row counts for every benchmark table",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cfg, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer mgr.Close()

		color.Cyan("Database: %s (%s)", cfg.Database.Name, cfg.Database.Provider)
		var total int64
		missing := 0
		for _, c := range mgr.TableCounts(cmd.Context()) {
			if c.Rows < 0 {
				fmt.Printf("  %-24s %s\n", c.Table, color.RedString("missing"))
				missing++
				continue
			}
			fmt.Printf("  %-24s %12d\n", c.Table, c.Rows)
			total += c.Rows
		}
		fmt.Println()
		if missing > 0 {
			color.Yellow("⚠️  %d tables missing; run 'tpcds-util schema create'", missing)
		}
		color.Green("Total rows: %d", total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
