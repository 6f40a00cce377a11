package journal

import (
	"bufio"
	"io"
	"time"
)

// Options control how the parser assembles intervals.
type Options struct {
	// Now is the moment used to close a still-running interval on today's
	// section. Callers sample it exactly once per run; the zero value means
	// time.Now at construction.
	Now time.Time

	// StrictOrder rejects date headers that are not strictly later than the
	// previous one. Some journals carry duplicate or backfilled headers, so
	// this is a switch rather than a hard rule.
	StrictOrder bool
}

// Parser turns journal text into date-partitioned work intervals.
//
// It is a single-pass state machine over classified lines: a date header
// opens a new day section, a start marker becomes the pending open interval,
// and an end marker closes it into the current section. At most one start
// can be pending at any time.
type Parser struct {
	opts Options
}

// NewParser returns a parser with the supplied options.
func NewParser(opts Options) *Parser {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	return &Parser{opts: opts}
}

// Parse consumes the whole journal and returns every day section seen, in
// file order, including sections with no intervals. The first structural
// violation aborts with a *ParseError naming the offending line.
//
// An end time at or before its start rolls into the next calendar day; work
// past midnight is logged under the day it began.
func (p *Parser) Parse(r io.Reader) ([]DaySection, error) {
	var (
		sections    []DaySection
		currentDate time.Time
		pending     time.Time
		havePending bool
		lineNo      int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := ClassifyLine(scanner.Text())

		switch line.Kind {
		case LineDate:
			if p.opts.StrictOrder && len(sections) > 0 && !line.Date.After(sections[len(sections)-1].Date) {
				return nil, &ParseError{Kind: ErrDateOrder, Line: lineNo}
			}
			currentDate = line.Date
			sections = append(sections, DaySection{Date: line.Date})

		case LineMarker:
			if currentDate.IsZero() {
				return nil, &ParseError{Kind: ErrNoDateContext, Line: lineNo}
			}
			ts := time.Date(
				currentDate.Year(), currentDate.Month(), currentDate.Day(),
				line.Hour, line.Minute, 0, 0,
				currentDate.Location(),
			)

			switch line.Action {
			case ActionStart:
				if havePending {
					return nil, &ParseError{Kind: ErrUnexpectedStart, Line: lineNo}
				}
				pending = ts
				havePending = true
			case ActionEnd:
				if !havePending {
					return nil, &ParseError{Kind: ErrUnexpectedEnd, Line: lineNo}
				}
				if !ts.After(pending) {
					ts = ts.AddDate(0, 0, 1)
				}
				last := len(sections) - 1
				sections[last].Intervals = append(sections[last].Intervals, Interval{Start: pending, End: ts})
				havePending = false
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// A trailing start on today's section means the user is still clocked
	// in; close it at now. Open markers left on earlier days are dropped.
	if havePending && sameDay(currentDate, p.opts.Now) && pending.Before(p.opts.Now) {
		last := len(sections) - 1
		sections[last].Intervals = append(sections[last].Intervals, Interval{Start: pending, End: p.opts.Now})
	}

	return sections, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
