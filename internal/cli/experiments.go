package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/velkatern/biopath/experiment"
)

const (
	corridorResultsFile = "wildlife_network_flow_results.csv"
	assemblyResultsFile = "dna_assembly_results.csv"
)

// newExperimentsCmd creates the experiments command: both timed size
// sweeps, streamed to CSV files in the output directory.
func newExperimentsCmd() *cobra.Command {
	var (
		outputDir  string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "experiments",
		Short: "Run both timed size sweeps and write CSV results",
		Long: `Run the corridor and assembly sweeps over their size ladders.

Each sweep writes one CSV row per instance size as it completes, so an
interrupted run still leaves usable result files. Sweep parameters come
from a TOML file when --config is set, otherwise from the canonical
defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg := experiment.DefaultConfig()
			if configPath != "" {
				loaded, err := experiment.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
				logger.Debug("loaded sweep config", "path", configPath)
			}

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			corridorPath := filepath.Join(outputDir, corridorResultsFile)
			corridorFile, err := os.Create(corridorPath)
			if err != nil {
				return fmt.Errorf("create corridor results: %w", err)
			}
			defer corridorFile.Close()

			assemblyPath := filepath.Join(outputDir, assemblyResultsFile)
			assemblyFile, err := os.Create(assemblyPath)
			if err != nil {
				return fmt.Errorf("create assembly results: %w", err)
			}
			defer assemblyFile.Close()

			runner := experiment.NewRunner(
				experiment.NewCSVCorridorSink(corridorFile),
				experiment.NewCSVAssemblySink(assemblyFile),
				logger,
			)

			corridorReport, err := runner.RunCorridor(cmd.Context(), cfg.Corridor)
			if err != nil {
				return err
			}
			assemblyReport, err := runner.RunAssembly(cmd.Context(), cfg.Assembly)
			if err != nil {
				return err
			}

			printSuccess("wrote %d corridor rows and %d assembly rows",
				len(corridorReport.Records), len(assemblyReport.Records))
			printFile(corridorPath)
			printFile(assemblyPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "data", "directory for result CSV files")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML sweep configuration file")
	return cmd
}
