package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/journal"
	"github.com/faizmokh/jam/internal/report"
)

// NewRootCommand creates the top-level Cobra command. The root command is
// the report itself; invoice, browse, and version hang off it.
func NewRootCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jam [journal] [start] [end]",
		Short: "Summarize billable hours from a plain-text time journal.",
		Long: `jam reads a journal of date headers and start/end markers:

    2024-01-05
    start 09:00
    end 12:30

and reports hours worked over an inclusive date range, optionally priced
at an hourly rate with a monthly retainer deducted. Lines that are neither
dates nor markers are ignored.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			loc, cfg, err := resolveSetup(cmd, args)
			if err != nil {
				return err
			}

			start, end, err := resolveRange(args, now)
			if err != nil {
				return err
			}

			sections, err := parseJournal(loc, cfg.StrictOrder, now)
			if err != nil {
				return err
			}

			filtered := journal.FilterRange(sections, start, end)
			if start.IsZero() {
				if len(filtered) == 0 {
					return errors.New("no intervals found")
				}
				start = filtered[0].Date
			}

			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return report.RenderJSON(out, filtered)
			}

			average, _ := cmd.Flags().GetBool("average")
			return report.Render(out, filtered, start, end, report.Options{
				Rate:              cfg.Rate,
				Retainer:          cfg.Retainer,
				Average:           average,
				ShowIntervals:     cfg.ShowIntervals,
				ShowDailyEarnings: cfg.ShowDailyEarnings,
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Bool("json", false, "Emit day-to-interval epochs as JSON instead of text")
	cmd.Flags().Bool("average", false, "Show average hours per week over the range")
	cmd.Flags().Bool("intervals", false, "List each interval beneath its day")
	cmd.Flags().Bool("daily-earnings", false, "Show per-day earnings next to each day")
	addSharedFlags(cmd)

	cmd.AddCommand(
		newInvoiceCommand(ctx),
		newBrowseCommand(ctx),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cmd := NewRootCommand(ctx)
	return cmd.Execute()
}

// Main is a helper used by cmd/jam/main.go to keep wiring contained in one
// package. A report with no hours already told the user on stdout, so that
// case exits non-zero without a second message.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		if !errors.Is(err, report.ErrNoHours) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
