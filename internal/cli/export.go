package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yigit/registrar/internal/bootstrap"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output   string
	SeedFile string
}

// NewExportCommand creates the command that writes a report from seed data
// without starting the server.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <gpa|roster>",
		Short: "Load seed data and export a report",
		Long: `Load the configured seed fixture (or --seed) into a fresh store and
write the requested report. The output format follows the file extension:
.yaml/.yml for YAML, anything else for JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "report.json", "output file path")
	cmd.Flags().StringVar(&opts.SeedFile, "seed", "", "seed fixture to load (overrides config)")

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions, reportType string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.SeedFile != "" {
		cfg.Seed.Enabled = true
		cfg.Seed.File = opts.SeedFile
	}

	deps, err := bootstrap.BuildDependencies(cmd.Context(), cfg, lgr)
	if err != nil {
		return err
	}

	if err := deps.Services.ReportService.ExportReport(cmd.Context(), reportType, opts.Output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s report to %s\n", reportType, opts.Output)
	return nil
}
