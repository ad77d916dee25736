package parse

import (
	"errors"
	"fmt"

	"github.com/sgf-format/go-sgf/token"
)

var (
	// ErrSyntax marks token mismatches at a position.
	ErrSyntax = errors.New("sgf syntax error")
	// ErrValidation marks well-formed but semantically invalid input.
	ErrValidation = errors.New("sgf validation error")
)

// SyntaxError reports a token mismatch. Found is the byte actually
// seen, or "end of input".
type SyntaxError struct {
	Pos      *token.Pos
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: expected %s, found %s %s", ErrSyntax, e.Expected, e.Found, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// ValidationError reports semantically invalid input: duplicate
// property, misplaced root property, out-of-range FF/GM, or a value
// matching no declared kind.
type ValidationError struct {
	Pos    *token.Pos
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrValidation, e.Reason, e.Pos)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func foundDesc(c byte, ok bool) string {
	if !ok {
		return "end of input"
	}
	return fmt.Sprintf("%q", string(c))
}
