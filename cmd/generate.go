package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rhkp/tpcds-util/internal/config"
	"github.com/rhkp/tpcds-util/internal/dsdgen"
	"github.com/rhkp/tpcds-util/internal/synth"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate benchmark data and queries",
}

var generateDataCmd = &cobra.Command{
	Use:   "data",
	Short: "Generate flat data files",
	Long: `Generate pipe-delimited flat files, one per table.

With --synthetic (the default when no toolkit is installed) the built-in
generator is used: deterministic, referentially consistent data at any
scale, including scale 0 for a ten-rows-per-table smoke dataset. Without
it, the official dsdgen binary produces spec-compliant data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		scale, _ := cmd.Flags().GetInt("scale")
		if !cmd.Flags().Changed("scale") {
			scale = cfg.DefaultScale
		}
		outputDir, _ := cmd.Flags().GetString("output-dir")
		if outputDir == "" {
			outputDir = cfg.OutputDir
		}
		seed, _ := cmd.Flags().GetInt64("seed")
		synthetic, _ := cmd.Flags().GetBool("synthetic")

		if !synthetic {
			kit, err := dsdgen.Locate(cfg.KitPath)
			if err != nil {
				color.Yellow("⚠️  %v; falling back to the synthetic generator", err)
				synthetic = true
			} else {
				if err := kit.GenerateData(cmd.Context(), scale, outputDir); err != nil {
					return err
				}
				color.Green("✅ dsdgen wrote scale %d data to %s", scale, outputDir)
				return nil
			}
		}

		manifest, err := synth.Generate(synth.Options{
			Scale:     scale,
			OutputDir: outputDir,
			Seed:      seed,
			Progress:  true,
		})
		if err != nil {
			return err
		}
		color.Green("✅ Generated %d tables (%d rows) in %s",
			len(manifest.Files), manifest.TotalRows(), manifest.OutputDir)
		for _, f := range manifest.Files {
			fmt.Printf("  %-24s %10d rows  %12d bytes\n", f.Table, f.Rows, f.Bytes)
		}
		return nil
	},
}

var generateQueriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Generate the benchmark query set with dsqgen",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		scale, _ := cmd.Flags().GetInt("scale")
		if !cmd.Flags().Changed("scale") {
			scale = cfg.DefaultScale
		}
		outputDir, _ := cmd.Flags().GetString("output-dir")
		dialect, _ := cmd.Flags().GetString("dialect")

		kit, err := dsdgen.Locate(cfg.KitPath)
		if err != nil {
			return err
		}
		if err := kit.GenerateQueries(cmd.Context(), scale, outputDir, dialect); err != nil {
			return err
		}
		color.Green("✅ Queries written to %s", outputDir)
		return nil
	},
}

func init() {
	generateDataCmd.Flags().Int("scale", 1, "Scale factor (0 = tiny test dataset)")
	generateDataCmd.Flags().String("output-dir", "", "Directory for .dat files")
	generateDataCmd.Flags().Int64("seed", 0, "Random seed for the synthetic generator")
	generateDataCmd.Flags().Bool("synthetic", true, "Use the built-in generator instead of dsdgen")

	generateQueriesCmd.Flags().Int("scale", 1, "Scale factor")
	generateQueriesCmd.Flags().String("output-dir", "tpcds_queries", "Directory for query files")
	generateQueriesCmd.Flags().String("dialect", "netezza", "Query template dialect")

	generateCmd.AddCommand(generateDataCmd, generateQueriesCmd)
	rootCmd.AddCommand(generateCmd)
}
