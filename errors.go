package yamlite

import (
	"errors"
	"fmt"
)

// ErrStopped is returned by Parse when a Key or Scalar callback
// returned false to abort the scan. It does not indicate malformed
// input.
var ErrStopped = errors.New("yamlite: parsing stopped by handler")

// ErrMixedQuotes is returned by QuoteScalar when a scalar contains
// both a literal single quote and a literal double quote. The subset
// has no escape sequences, so no quoting style can represent such a
// scalar.
var ErrMixedQuotes = errors.New("yamlite: scalar contains both single and double quotes")

// A ParseError describes a syntax error and the position at which it
// was detected. All parse errors are terminal: the parser does not
// attempt resynchronization or recovery.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("yamlite: line %d, column %d: %s", e.Line, e.Column, e.Message)
}
