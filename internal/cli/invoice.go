package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/journal"
	"github.com/faizmokh/jam/internal/report"
)

func newInvoiceCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice [journal]",
		Short: "Write one billing report per month and sum the amounts due.",
		Long: `invoice runs the report once per calendar month of the target year and
writes each month's output to its own file, optionally prefixed with a
template. Months with no recorded hours are skipped. The grand total of
amounts due is printed at the end.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			loc, cfg, err := resolveSetup(cmd, args)
			if err != nil {
				return err
			}

			year, _ := cmd.Flags().GetInt("year")
			outDir, _ := cmd.Flags().GetString("out")
			templatePath, _ := cmd.Flags().GetString("template")

			var prefix []byte
			if templatePath != "" {
				prefix, err = os.ReadFile(templatePath)
				if err != nil {
					return fmt.Errorf("read template: %w", err)
				}
			}

			sections, err := parseJournal(loc, cfg.StrictOrder, now)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			out := cmd.OutOrStdout()
			var grand float64
			for month := time.January; month <= time.December; month++ {
				start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
				end := start.AddDate(0, 1, -1)
				filtered := journal.FilterRange(sections, start, end)

				var buf bytes.Buffer
				buf.Write(prefix)
				err := report.Render(&buf, filtered, start, end, report.Options{
					Rate:              cfg.Rate,
					Retainer:          cfg.Retainer,
					ShowIntervals:     cfg.ShowIntervals,
					ShowDailyEarnings: cfg.ShowDailyEarnings,
				})
				if errors.Is(err, report.ErrNoHours) {
					fmt.Fprintf(out, "%s %d: no hours recorded, skipped\n", month, year)
					continue
				}
				if err != nil {
					return err
				}

				name := fmt.Sprintf("%04d-%02d_%s", year, month, month)
				if err := os.WriteFile(filepath.Join(outDir, name), buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", name, err)
				}
				fmt.Fprintf(out, "Wrote %s\n", name)

				if cfg.Rate > 0 {
					hours := journal.Total(filtered).Hours()
					grand += journal.TotalDue(hours, cfg.Rate, cfg.Retainer)
				}
			}

			if cfg.Rate > 0 {
				fmt.Fprintf(out, "Total sum: $%.2f\n", grand)
			}
			return nil
		},
	}

	cmd.Flags().Int("year", time.Now().Year(), "Year to invoice, one file per month")
	cmd.Flags().String("out", ".", "Directory the per-month files are written to")
	cmd.Flags().String("template", "", "File prepended to every month's report")
	addSharedFlags(cmd)

	return cmd
}
