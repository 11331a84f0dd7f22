package uritemplate

import (
	"strconv"
	"strings"
)

// VarSpec is one variable of an expression: a name with an optional
// explode or prefix modifier (RFC 6570 Section 2.4).
type VarSpec struct {
	// Name is the varname as written, percent-encoded triplets included.
	Name string
	// Explode is set by the "*" modifier.
	Explode bool
	// MaxLength is the prefix length set by ":N", or 0 without a prefix.
	MaxLength int
}

func (s VarSpec) String() string {
	switch {
	case s.Explode:
		return s.Name + "*"
	case s.MaxLength > 0:
		return s.Name + ":" + strconv.Itoa(s.MaxLength)
	}
	return s.Name
}

// expression is one parsed segment of a template.
type expression interface {
	expand(b *strings.Builder, vars Variables) error
	String() string
}

// literalExpr is template text outside braces, encoded once at parse time.
type literalExpr struct {
	source  string
	encoded string
}

func newLiteralExpr(source string) *literalExpr {
	return &literalExpr{source: source, encoded: encodeLiteral(source)}
}

func (e *literalExpr) expand(b *strings.Builder, _ Variables) error {
	b.WriteString(e.encoded)
	return nil
}

func (e *literalExpr) String() string {
	return e.source
}

// variableExpr is a braced expression such as "{?x,y}".
type variableExpr struct {
	source string
	op     *operator
	specs  []VarSpec
}

func (e *variableExpr) String() string {
	return e.source
}
