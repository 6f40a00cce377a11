package journal

import "time"

// Interval is one closed span of work. End is always strictly after Start.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns the elapsed wall-clock time of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// DaySection groups the intervals recorded beneath one YYYY-MM-DD header.
type DaySection struct {
	Date      time.Time
	Intervals []Interval
}
