package uritemplate

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is the error wrapped by every *SyntaxError.
	ErrSyntax = errors.New("uritemplate: syntax error")

	// ErrExpansion is the error wrapped by every *ExpansionError.
	ErrExpansion = errors.New("uritemplate: expansion error")

	// ErrOddPairs is returned by ExpandPairs when the name/value list has
	// odd length.
	ErrOddPairs = errors.New("uritemplate: number of parameters must be multiple of 2")

	// ErrUnsupportedValue is returned by ValueOf for Go values that have
	// no RFC 6570 representation, such as channels or functions.
	ErrUnsupportedValue = errors.New("uritemplate: unsupported value type")
)

// SyntaxError reports a malformed template.
type SyntaxError struct {
	// Template is the complete template text.
	Template string
	// Pos is the byte offset of the offending character in Template.
	Pos int
	// Msg describes the problem.
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("uritemplate: %s at position %d of %q", e.Msg, e.Pos, e.Template)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func syntaxErrorf(tpl string, pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Template: tpl, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// ExpansionError reports a variable that cannot be expanded by its
// expression, such as a prefix modifier applied to a list.
type ExpansionError struct {
	// Expression is the source text of the expression, braces included.
	Expression string
	// Varname is the variable that failed.
	Varname string
	// Msg describes the problem.
	Msg string
}

func (e *ExpansionError) Error() string {
	return fmt.Sprintf("uritemplate: cannot expand %q in %s: %s", e.Varname, e.Expression, e.Msg)
}

func (e *ExpansionError) Unwrap() error {
	return ErrExpansion
}
