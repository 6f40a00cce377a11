package journal

import "time"

// Sum returns the total elapsed time across intervals. An empty or nil
// sequence sums to zero.
func Sum(intervals []Interval) time.Duration {
	var total time.Duration
	for _, iv := range intervals {
		total += iv.Duration()
	}
	return total
}

// Total sums every interval in every section.
func Total(sections []DaySection) time.Duration {
	var total time.Duration
	for _, section := range sections {
		total += Sum(section.Intervals)
	}
	return total
}

// FilterRange keeps sections whose date falls within the inclusive
// [start, end] bounds and that hold at least one interval. A zero bound is
// unbounded on that side. Filtering is idempotent.
func FilterRange(sections []DaySection, start, end time.Time) []DaySection {
	var kept []DaySection
	for _, section := range sections {
		if len(section.Intervals) == 0 {
			continue
		}
		if !start.IsZero() && section.Date.Before(start) {
			continue
		}
		if !end.IsZero() && section.Date.After(end) {
			continue
		}
		kept = append(kept, section)
	}
	return kept
}

// TotalDue computes the amount owed for the worked hours. A positive
// retainer is subtracted from the gross amount, floored at zero.
func TotalDue(hours, rate, retainer float64) float64 {
	due := hours * rate
	if retainer > 0 {
		due -= retainer
		if due < 0 {
			due = 0
		}
	}
	return due
}

// AveragePerWeek spreads the total over the inclusive [start, end] date
// range and returns the per-week share. Both bounds must be set; the
// denominator is undefined without a start date, so callers skip the figure
// when none is available.
func AveragePerWeek(total time.Duration, start, end time.Time) time.Duration {
	days := int(end.Sub(start).Hours()/24) + 1
	weeks := float64(days) / 7
	return time.Duration(float64(total) / weeks)
}
