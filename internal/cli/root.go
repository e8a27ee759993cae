// Package cli implements the insumo command line: the demo driver that
// feeds records through the core containers, searches, and reports.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the insumo CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "insumo",
		Short: "Inventory-consumption tracking for diagnostics facilities",
		Long: "Simulates inventory-consumption tracking for a diagnostics facility:\n" +
			"chronological deduction processing, recent-activity undo, item lookup,\n" +
			"and consumption/expiry reports.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags. INSUMO_FORMAT provides the default so .env files can
	// set it once per machine.
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", defaultFormat(), "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))

	return cmd
}

// defaultFormat resolves the --format default from the environment.
func defaultFormat() string {
	if f := os.Getenv("INSUMO_FORMAT"); f != "" {
		return f
	}
	return "text"
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
