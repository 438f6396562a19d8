package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create or drop the benchmark schema",
}

var schemaCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create all benchmark tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer mgr.Close()

		if err := mgr.CreateSchema(cmd.Context()); err != nil {
			return err
		}
		color.Green("✅ Schema created")
		return nil
	},
}

var schemaDropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop all benchmark tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force && !confirm("Drop all benchmark tables?") {
			color.Yellow("Aborted")
			return nil
		}

		mgr, _, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer mgr.Close()

		if err := mgr.DropSchema(cmd.Context()); err != nil {
			return err
		}
		color.Green("✅ Schema dropped")
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	schemaDropCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	schemaCmd.AddCommand(schemaCreateCmd, schemaDropCmd)
	rootCmd.AddCommand(schemaCmd)
}
