// Package uritemplate implements URI Templates as defined by RFC 6570,
// covering all four levels of the specification.
//
// A template is parsed once and expanded any number of times against
// different variables:
//
//	t, err := uritemplate.Parse("https://api.example.com/repos/{owner}/{repo}/issues{?state,labels}")
//	if err != nil {
//	    return err
//	}
//	u, err := t.Expand(uritemplate.Variables{
//	    "owner":  uritemplate.String("vitalvas"),
//	    "repo":   uritemplate.String("kasper"),
//	    "labels": uritemplate.Strings("bug", "ui"),
//	})
//	// https://api.example.com/repos/vitalvas/kasper/issues?labels=bug,ui
//
// A parsed *Template is immutable and safe for concurrent use.
//
// # Expressions
//
// Expressions are enclosed in braces and start with an optional operator
// (RFC 6570 Section 3.2):
//
//	{var}     simple string expansion
//	{+var}    reserved expansion, reserved characters are not encoded
//	{#var}    fragment expansion, prefixed by "#"
//	{.var}    label expansion, prefixed by "."
//	{/var}    path segment expansion, prefixed by "/"
//	{;var}    path-style parameters, ";var=value"
//	{?var}    form-style query, "?var=value"
//	{&var}    form-style query continuation, "&var=value"
//
// The operators "=", ",", "!", "@" and "|" are reserved for future
// extensions and are rejected. Any other leading character is read as the
// start of the first variable name.
//
// Each variable may carry one modifier (RFC 6570 Section 2.4): a prefix
// "{var:3}" which keeps the first characters of a string value, or an
// explode "{list*}" which expands each member of a list or map on its own.
//
// # Values
//
// Variables maps names to Value, a tagged union of undefined, scalar,
// list and map. Map values are ordered lists of pairs so the expansion
// order is under the caller's control:
//
//	vars := uritemplate.Variables{
//	    "id":     uritemplate.Int(42),
//	    "fields": uritemplate.Strings("name", "email"),
//	    "filter": uritemplate.Map(
//	        uritemplate.Pair{Key: "role", Value: uritemplate.String("admin")},
//	        uritemplate.Pair{Key: "active", Value: uritemplate.Bool(true)},
//	    ),
//	}
//
// ValueOf and VariablesOf convert native Go values; maps are ordered by
// key. Value also decodes from JSON and YAML documents, keeping object
// members in document order.
//
// A value is defined when it is a scalar (including the empty string) or a
// list or map with at least one defined member. Undefined variables are
// skipped entirely (RFC 6570 Section 2.3).
//
// # Encoding
//
// Characters outside the allowed set are percent-encoded as UTF-8 octets
// with uppercase hex digits. Sequences that are already valid
// percent-encoded UTF-8, such as "%20" or "%C3%B6", are copied unchanged,
// so expanding pre-encoded input never encodes it twice. Prefix lengths
// count such a sequence as one character.
//
// # Errors
//
// Parse returns a *SyntaxError, wrapping ErrSyntax, for unbalanced braces,
// empty expressions, reserved operators and malformed variable lists.
// Expand returns an *ExpansionError, wrapping ErrExpansion, when a prefix
// modifier is applied to a list or map. Both carry the position or
// expression that caused them:
//
//	if _, err := uritemplate.Parse("{a"); errors.Is(err, uritemplate.ErrSyntax) {
//	    var serr *uritemplate.SyntaxError
//	    errors.As(err, &serr)
//	    fmt.Println(serr.Pos)
//	}
//
// # Configuration
//
// Template implements encoding.TextUnmarshaler, so templates can be
// declared in YAML or JSON configuration next to their variables:
//
//	var cfg struct {
//	    Endpoint  *uritemplate.Template `yaml:"endpoint"`
//	    Variables uritemplate.Variables `yaml:"variables"`
//	}
package uritemplate
