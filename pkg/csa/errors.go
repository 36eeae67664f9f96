package csa

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// UnknownDialect means no valid version line was found, or an
	// unrecognized one.
	UnknownDialect ErrorKind = iota
	// GrammarViolation means the matched dialect's grammar rejected the
	// input. Line carries the positional diagnostic.
	GrammarViolation
)

// ParseError is the single error shape of the facade. A failed parse yields
// exactly one of these and no partial record.
type ParseError struct {
	Kind ErrorKind
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownDialect:
		return fmt.Sprintf("csa: unknown dialect: %s", e.Msg)
	default:
		if e.Line > 0 {
			return fmt.Sprintf("csa: line %d: %s", e.Line, e.Msg)
		}
		return fmt.Sprintf("csa: %s", e.Msg)
	}
}

func grammarErrorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Kind: GrammarViolation, Line: line, Msg: fmt.Sprintf(format, args...)}
}
