package journal

import (
	"strings"
	"time"
)

// LineKind tags the classification of a single journal line.
type LineKind uint8

const (
	// LineIgnored covers blank lines, comments, and free text.
	LineIgnored LineKind = iota
	// LineDate is a YYYY-MM-DD header opening a new day section.
	LineDate
	// LineMarker is a "start HH:MM" or "end HH:MM" timestamp.
	LineMarker
)

// Action distinguishes the two marker verbs.
type Action uint8

const (
	// ActionStart opens an interval.
	ActionStart Action = iota
	// ActionEnd closes the pending interval.
	ActionEnd
)

// Line is the result of classifying one line of journal text.
type Line struct {
	Kind   LineKind
	Date   time.Time // set when Kind == LineDate
	Action Action    // set when Kind == LineMarker
	Hour   int       // set when Kind == LineMarker
	Minute int       // set when Kind == LineMarker
}

// ClassifyLine decides whether a line is a date header, a time marker, or
// plain text to skip. It is total: unrecognized input classifies as
// LineIgnored, never as an error. Date headers win over marker shapes.
func ClassifyLine(text string) Line {
	text = strings.TrimSpace(text)

	if date, err := time.ParseInLocation("2006-01-02", text, time.Local); err == nil {
		return Line{Kind: LineDate, Date: date}
	}

	verb, rest, found := strings.Cut(text, " ")
	if !found {
		return Line{Kind: LineIgnored}
	}

	var action Action
	switch verb {
	case "start":
		action = ActionStart
	case "end":
		action = ActionEnd
	default:
		return Line{Kind: LineIgnored}
	}

	clock, err := time.Parse("15:04", rest)
	if err != nil {
		return Line{Kind: LineIgnored}
	}

	return Line{
		Kind:   LineMarker,
		Action: action,
		Hour:   clock.Hour(),
		Minute: clock.Minute(),
	}
}
