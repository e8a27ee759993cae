package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/diaglab/insumo/internal/ledger"
	"github.com/diaglab/insumo/internal/report"
	"github.com/diaglab/insumo/internal/simulate"
	"github.com/diaglab/insumo/pkg/logger"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	ConfigPath string
	Days       int
	Seed       int64
	Top        int

	// Logger allows overriding the zap logger (for testing).
	Logger *zap.Logger
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the consumption and expiry reports",
		Long: `Print the two sorted reports over the simulated records:
items ranked by consumed quantity (highest first) and items ranked by
expiration date (soonest first).

Example:
  insumo report --seed 42 --top 10
  insumo report --config ./simulation.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReports(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to simulation config YAML (default: built-in profile)")
	cmd.Flags().IntVar(&opts.Days, "days", 0, "override the number of simulated days")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 = derive from time)")
	cmd.Flags().IntVar(&opts.Top, "top", 5, "number of lines per report")

	return cmd
}

func runReports(opts *ReportOptions, cmd *cobra.Command) error {
	log := opts.Logger
	if log == nil {
		l, err := logger.New(opts.Verbose)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to create logger", err)
		}
		defer func() { _ = l.Sync() }()
		log = l
	}

	runID := uuid.NewString()
	log = logger.Named(log, "report").With(zap.String("run_id", runID))

	cfg, err := loadSimulation(opts.ConfigPath, opts.Days, opts.Seed)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load simulation config", err)
	}

	records, err := simulate.Generate(cfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to generate sample data", err)
	}
	log.Info("sample data generated", zap.Int("records", len(records)))

	top, err := report.TopConsumed(records, opts.Top)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to build consumption report", err)
	}
	outlook, err := report.ExpiryOutlook(records, opts.Top)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to build expiry report", err)
	}

	out := cmd.OutOrStdout()

	if opts.Format == "json" {
		f := &OutputFormatter{Format: opts.Format, Writer: out}
		return f.Success(runID, reportSummary{
			Profile:       cfg.Name,
			Records:       len(records),
			TopConsumed:   top,
			ExpiryOutlook: outlook,
		})
	}

	if err := report.RenderTopConsumed(out, top); err != nil {
		return WrapExitError(ExitFailure, "failed to render consumption report", err)
	}
	fmt.Fprintln(out)
	if err := report.RenderExpiryOutlook(out, outlook); err != nil {
		return WrapExitError(ExitFailure, "failed to render expiry report", err)
	}

	return nil
}

// reportSummary is the JSON payload of the report command.
type reportSummary struct {
	Profile       string          `json:"profile"`
	Records       int             `json:"records"`
	TopConsumed   []ledger.Record `json:"top_consumed"`
	ExpiryOutlook []ledger.Record `json:"expiry_outlook"`
}
