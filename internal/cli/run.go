package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/diaglab/insumo/internal/ledger"
	"github.com/diaglab/insumo/internal/report"
	"github.com/diaglab/insumo/internal/simulate"
	"github.com/diaglab/insumo/pkg/logger"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	ConfigPath string
	Days       int
	Seed       int64
	Top        int

	// Logger allows overriding the zap logger (for testing).
	// If nil, a production logger is built per the verbose flag.
	Logger *zap.Logger
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full consumption-tracking demo flow",
		Long: `Run the full consumption-tracking demo flow.

Generates sample consumption records from the simulation config, feeds
them through the chronological deduction queue and the recent-activity
stack, looks an item up with both searches, and prints the quantity and
expiry reports.

Example:
  insumo run --seed 42
  insumo run --config ./simulation.yaml --days 5 --top 3 --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to simulation config YAML (default: built-in profile)")
	cmd.Flags().IntVar(&opts.Days, "days", 0, "override the number of simulated days")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 = derive from time)")
	cmd.Flags().IntVar(&opts.Top, "top", 5, "number of lines per report")

	return cmd
}

func runDemo(opts *RunOptions, cmd *cobra.Command) error {
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
	log = logger.Named(log, "run").With(zap.String("run_id", runID))

	cfg, err := loadSimulation(opts.ConfigPath, opts.Days, opts.Seed)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load simulation config", err)
	}
	log.Info("simulation config loaded",
		zap.String("profile", cfg.Name),
		zap.Int("days", cfg.Days),
		zap.Int64("seed", cfg.Seed))

	records, err := simulate.Generate(cfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to generate sample data", err)
	}
	log.Info("sample data generated", zap.Int("records", len(records)))

	// Chronological deduction: record the first consumptions, process
	// two stock deductions.
	queue := ledger.NewConsumptionQueue()
	for _, r := range head(records, 3) {
		queue.Enqueue(r)
		log.Debug("consumption recorded", zap.String("item", r.Item), zap.Int("quantity", r.Quantity))
	}
	var processed []ledger.Record
	for i := 0; i < 2; i++ {
		r, ok := queue.Dequeue()
		if !ok {
			break
		}
		processed = append(processed, r)
		log.Debug("stock deducted", zap.String("item", r.Item), zap.Int("quantity", r.Quantity))
	}

	// Recent activity: stack the latest entries, inspect, undo one.
	stack := ledger.NewRecentActivityStack()
	for _, r := range head(records, 4) {
		stack.Push(r)
	}
	latest, hasLatest := stack.Peek()
	undone, hasUndone := stack.Pop()
	if hasUndone {
		log.Debug("entry undone", zap.String("item", undone.Item), zap.Int("quantity", undone.Quantity))
	}
	afterUndo, hasAfterUndo := stack.Peek()

	// Item lookup, both ways. Binary search needs the item-sorted view.
	target := cfg.Items[0]
	matches := ledger.SequentialSearchAll(records, target)
	byItem, err := ledger.MergeSort(records, ledger.KeyItem)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to sort records by item", err)
	}
	binMatch, binFound := ledger.BinarySearch(byItem, target)

	top, err := report.TopConsumed(records, opts.Top)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to build consumption report", err)
	}
	outlook, err := report.ExpiryOutlook(records, opts.Top)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to build expiry report", err)
	}
	log.Info("reports built", zap.Int("top", len(top)), zap.Int("outlook", len(outlook)))

	out := cmd.OutOrStdout()

	if opts.Format == "json" {
		summary := runSummary{
			Profile:           cfg.Name,
			Records:           len(records),
			Processed:         processed,
			Pending:           queue.Len(),
			SequentialMatches: len(matches),
			TopConsumed:       top,
			ExpiryOutlook:     outlook,
		}
		if hasUndone {
			summary.Undone = &undone
		}
		if binFound {
			summary.BinaryMatch = &binMatch
		}
		f := &OutputFormatter{Format: opts.Format, Writer: out}
		return f.Success(runID, summary)
	}

	return writeDemoText(out, cfg.Name, records, processed, queue.Len(),
		latest, hasLatest, undone, hasUndone, afterUndo, hasAfterUndo,
		target, len(matches), binMatch, binFound, top, outlook)
}

// runSummary is the JSON payload of the run command.
type runSummary struct {
	Profile           string          `json:"profile"`
	Records           int             `json:"records"`
	Processed         []ledger.Record `json:"processed"`
	Pending           int             `json:"pending"`
	Undone            *ledger.Record  `json:"undone,omitempty"`
	SequentialMatches int             `json:"sequential_matches"`
	BinaryMatch       *ledger.Record  `json:"binary_match,omitempty"`
	TopConsumed       []ledger.Record `json:"top_consumed"`
	ExpiryOutlook     []ledger.Record `json:"expiry_outlook"`
}

func writeDemoText(out io.Writer, profile string, records, processed []ledger.Record, pending int,
	latest ledger.Record, hasLatest bool, undone ledger.Record, hasUndone bool,
	afterUndo ledger.Record, hasAfterUndo bool,
	target string, matches int, binMatch ledger.Record, binFound bool,
	top, outlook []ledger.Record) error {

	fmt.Fprintf(out, "Simulated %d consumption records (profile %q)\n\n", len(records), profile)

	fmt.Fprintln(out, "Consumption queue (FIFO):")
	for _, r := range processed {
		fmt.Fprintf(out, "  deducted: %s (qty %d)\n", r.Item, r.Quantity)
	}
	fmt.Fprintf(out, "  pending deductions: %d\n\n", pending)

	fmt.Fprintln(out, "Recent activity (LIFO):")
	if hasLatest {
		fmt.Fprintf(out, "  latest: %s (qty %d)\n", latest.Item, latest.Quantity)
	}
	if hasUndone {
		fmt.Fprintf(out, "  undone: %s (qty %d)\n", undone.Item, undone.Quantity)
	}
	if hasAfterUndo {
		fmt.Fprintf(out, "  latest after undo: %s (qty %d)\n", afterUndo.Item, afterUndo.Quantity)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Searches:")
	fmt.Fprintf(out, "  sequential %q: %d records\n", target, matches)
	if binFound {
		fmt.Fprintf(out, "  binary %q: found (expires %s)\n", target, binMatch.ExpiresOn.Format("2006-01-02"))
	} else {
		fmt.Fprintf(out, "  binary %q: not found\n", target)
	}
	fmt.Fprintln(out)

	if err := report.RenderTopConsumed(out, top); err != nil {
		return WrapExitError(ExitFailure, "failed to render consumption report", err)
	}
	fmt.Fprintln(out)
	if err := report.RenderExpiryOutlook(out, outlook); err != nil {
		return WrapExitError(ExitFailure, "failed to render expiry report", err)
	}

	return nil
}

// head returns the first n records, or all of them when fewer exist.
func head(records []ledger.Record, n int) []ledger.Record {
	if n > len(records) {
		return records
	}
	return records[:n]
}
