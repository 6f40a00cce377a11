package journal

import "fmt"

// ErrorKind names the structural violation a ParseError reports.
type ErrorKind uint8

const (
	// ErrNoDateContext means a time marker appeared before any date header.
	ErrNoDateContext ErrorKind = iota
	// ErrUnexpectedStart means a start marker appeared while one was pending.
	ErrUnexpectedStart
	// ErrUnexpectedEnd means an end marker appeared with no pending start.
	ErrUnexpectedEnd
	// ErrDateOrder means a date header did not advance chronologically.
	ErrDateOrder
)

// ParseError is the single taxonomy for journal structure violations. It
// always cites the 1-based line number of the offending line. Parsing stops
// at the first ParseError; there is no partial-result mode.
type ParseError struct {
	Kind ErrorKind
	Line int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrNoDateContext:
		return fmt.Sprintf("line %d: time marker before any date header", e.Line)
	case ErrUnexpectedStart:
		return fmt.Sprintf("line %d: unexpected interval start", e.Line)
	case ErrUnexpectedEnd:
		return fmt.Sprintf("line %d: unexpected interval end", e.Line)
	case ErrDateOrder:
		return fmt.Sprintf("line %d: date header out of order", e.Line)
	default:
		return fmt.Sprintf("line %d: invalid journal structure", e.Line)
	}
}
