package uritemplate

import (
	"fmt"
	"strings"
)

// Template is a parsed URI template. It is immutable and safe for
// concurrent use.
type Template struct {
	text  string
	exprs []expression
}

// MustParse is like Parse but panics if the template cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(text string) *Template {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

// Expand parses text and expands it with vars.
func Expand(text string, vars Variables) (string, error) {
	t, err := Parse(text)
	if err != nil {
		return "", err
	}
	return t.Expand(vars)
}

// Expand renders the template with vars. Errors are of type
// *ExpansionError; no partial result is returned.
func (t *Template) Expand(vars Variables) (string, error) {
	var b strings.Builder
	b.Grow(len(t.text))
	for _, e := range t.exprs {
		if err := e.expand(&b, vars); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// ExpandPairs renders the template with string variables given as
// alternating names and values:
//
//	u, err := t.ExpandPairs("category", "tech", "id", "42")
func (t *Template) ExpandPairs(pairs ...string) (string, error) {
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("%w, got %v", ErrOddPairs, pairs)
	}
	vars := make(Variables, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		vars[pairs[i]] = String(pairs[i+1])
	}
	return t.Expand(vars)
}

// String returns the source text of the template.
func (t *Template) String() string {
	return t.text
}

// VarSpecs returns every variable specification in template order.
func (t *Template) VarSpecs() []VarSpec {
	var specs []VarSpec
	for _, e := range t.exprs {
		if ve, ok := e.(*variableExpr); ok {
			specs = append(specs, ve.specs...)
		}
	}
	return specs
}

// Varnames returns the distinct variable names in order of first use.
func (t *Template) Varnames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, spec := range t.VarSpecs() {
		if !seen[spec.Name] {
			seen[spec.Name] = true
			names = append(names, spec.Name)
		}
	}
	return names
}

// MarshalText returns the source text of the template.
func (t *Template) MarshalText() ([]byte, error) {
	return []byte(t.text), nil
}

// UnmarshalText parses text into t, so templates can be read from
// configuration files.
func (t *Template) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}
