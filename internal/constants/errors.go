package constants

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrodex/internal/symbols"
)

var (
	// ErrUninitializedCounter is returned when a const or machine directive
	// appears before a const_def or const_next established the counter.
	ErrUninitializedCounter = errors.New("const counter is not initialized")
	// ErrUnknownSymbol is returned when an expression references a name
	// that has not been defined yet.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrMalformedDirective is returned when a directive lacks expected tokens.
	ErrMalformedDirective = errors.New("malformed directive")
	// ErrDuplicateSymbol is returned when an index or canonical name is assigned twice.
	ErrDuplicateSymbol = symbols.ErrDuplicateSymbol
)

// LineError wraps a parse error with the source line it occurred on.
type LineError struct {
	Line int    // 1-based line number in the input
	Text string // normalized line content
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d '%s': %s", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
