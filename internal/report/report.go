package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/faizmokh/jam/internal/journal"
)

const (
	dateFormat  = "2006-01-02"
	clockFormat = "03:04 PM"
)

// ErrNoHours is returned by Render when the filtered sections hold no time
// at all. The report still states the fact; callers turn it into a non-zero
// exit.
var ErrNoHours = errors.New("no hours recorded")

// Options control what the text report includes. They are passed explicitly
// so rendering never depends on process-wide state.
type Options struct {
	// Rate is the hourly rate in whole currency units. Zero means no billing
	// lines are printed.
	Rate float64
	// Retainer is an already-paid monthly amount deducted from the gross
	// total, floored at zero.
	Retainer float64
	// Average adds an average-hours-per-week figure over the date range.
	Average bool
	// ShowIntervals lists each interval beneath its day line.
	ShowIntervals bool
	// ShowDailyEarnings appends a per-day amount to each day line.
	ShowDailyEarnings bool
}

// Render writes the human-readable report for the filtered sections over the
// inclusive [start, end] range.
func Render(w io.Writer, sections []journal.DaySection, start, end time.Time, opts Options) error {
	fmt.Fprintf(w, "Dates: %s to %s\n", start.Format(dateFormat), end.Format(dateFormat))

	var (
		total    time.Duration
		dayLines []string
	)
	for _, section := range sections {
		elapsed := journal.Sum(section.Intervals)
		total += elapsed

		line := fmt.Sprintf("    %s: %s", section.Date.Format(dateFormat), FormatDuration(elapsed))
		if opts.ShowDailyEarnings && opts.Rate > 0 {
			line += fmt.Sprintf(" %8s", fmt.Sprintf("$%.2f", elapsed.Hours()*opts.Rate))
		}
		dayLines = append(dayLines, line)

		if opts.ShowIntervals {
			for _, iv := range section.Intervals {
				dayLines = append(dayLines, fmt.Sprintf("      %s - %s",
					iv.Start.Format(clockFormat), iv.End.Format(clockFormat)))
			}
		}
	}

	if total == 0 {
		fmt.Fprintln(w, "No hours recorded.")
		return ErrNoHours
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Hours worked:")
	for _, line := range dayLines {
		fmt.Fprintln(w, line)
	}

	totalHours := total.Hours()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total time worked: %.2f hours (%s)\n", totalHours, FormatDuration(total))

	billing := opts.Rate > 0
	var due float64
	if billing {
		fmt.Fprintf(w, "Hourly rate: $%g\n", opts.Rate)
		due = totalHours * opts.Rate
	}
	if billing && opts.Retainer > 0 {
		fmt.Fprintf(w, "Gross total: $%.2f\n", due)
		fmt.Fprintf(w, "Already-paid monthly retainer: $%g\n", opts.Retainer)
		due = journal.TotalDue(totalHours, opts.Rate, opts.Retainer)
	}

	if opts.Average {
		average := journal.AveragePerWeek(total, start, end)
		fmt.Fprintf(w, "Average hours per week: %.2f (%s)\n", average.Hours(), FormatDuration(average))
	}

	if billing {
		fmt.Fprintf(w, "Total due: $%.2f\n", due)
	}

	return nil
}

// RenderJSON emits the machine-readable form: local-midnight epoch of each
// day mapped to its [start_epoch, end_epoch] pairs.
func RenderJSON(w io.Writer, sections []journal.DaySection) error {
	payload := make(map[int64][][2]int64, len(sections))
	for _, section := range sections {
		pairs := make([][2]int64, 0, len(section.Intervals))
		for _, iv := range section.Intervals {
			pairs = append(pairs, [2]int64{iv.Start.Unix(), iv.End.Unix()})
		}
		payload[section.Date.Unix()] = pairs
	}
	return json.NewEncoder(w).Encode(payload)
}

// FormatDuration renders a duration as the journal's HhMMm shorthand, for
// example 7h30m or 0h05m. Seconds round to the nearest minute.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%dh%02dm", hours, minutes)
}
