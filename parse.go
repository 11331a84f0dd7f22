package uritemplate

import "strconv"

// maxPrefixLength bounds the ":N" modifier (RFC 6570 Section 2.4.1).
const maxPrefixLength = 9999

// Parse parses a URI template. Errors are of type *SyntaxError.
func Parse(text string) (*Template, error) {
	var (
		exprs        []expression
		literalStart = 0
		braceOpen    = -1
	)

	for i := 0; i < len(text); i++ {
		c := text[i]

		if braceOpen < 0 {
			switch c {
			case '}':
				return nil, syntaxErrorf(text, i, "brace closed but never opened")
			case '{':
				if literalStart < i {
					exprs = append(exprs, newLiteralExpr(text[literalStart:i]))
				}
				braceOpen = i
			}
			continue
		}

		switch c {
		case '{':
			return nil, syntaxErrorf(text, i, "brace opened at position %d cannot be reopened", braceOpen)
		case '}':
			if braceOpen+1 == i {
				return nil, syntaxErrorf(text, braceOpen, "empty braces")
			}
			expr, err := parseExpression(text, braceOpen, i+1)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, expr)
			braceOpen = -1
			literalStart = i + 1
		}
	}

	if braceOpen >= 0 {
		return nil, syntaxErrorf(text, braceOpen, "brace opened but never closed")
	}
	if literalStart < len(text) {
		exprs = append(exprs, newLiteralExpr(text[literalStart:]))
	}

	return &Template{text: text, exprs: exprs}, nil
}

// exprParser scans the body of one braced expression.
type exprParser struct {
	tpl  string
	base int // offset of body within tpl
	body string

	specs     []VarSpec
	spec      VarSpec
	nameStart int // >= 0 while a varname is being scanned
	lenStart  int // >= 0 while a max-length is being scanned
}

// parseExpression parses tpl[start:end], which includes both braces.
func parseExpression(tpl string, start, end int) (*variableExpr, error) {
	p := &exprParser{
		tpl:      tpl,
		base:     start + 1,
		body:     tpl[start+1 : end-1],
		lenStart: -1,
	}

	op, explicit, ok := lookupOperator(p.body[0])
	if !ok {
		return nil, syntaxErrorf(tpl, p.base, "illegal use of reserved operator %q", p.body[0])
	}

	offset := 0
	if explicit {
		offset = 1
	}
	p.nameStart = offset

	for at, unit := range units(p.body[offset:]) {
		if err := p.step(offset+at, unit); err != nil {
			return nil, err
		}
	}
	if err := p.finish(); err != nil {
		return nil, err
	}

	return &variableExpr{source: tpl[start:end], op: op, specs: p.specs}, nil
}

func (p *exprParser) step(at int, unit string) error {
	if p.nameStart >= 0 {
		// varname = varchar *( ["."] varchar )
		if unit == "." {
			if p.nameStart == at {
				return syntaxErrorf(p.tpl, p.base+at, "variable name must not start with a dot")
			}
			return nil
		}
		if isVarchar(unit) {
			return nil
		}
		if err := p.closeName(at, unit); err != nil {
			return err
		}
	}

	if p.lenStart >= 0 {
		if len(unit) == 1 && isDigit(unit[0]) {
			return nil
		}
		if err := p.closeLength(at); err != nil {
			return err
		}
	}

	switch unit {
	case ":":
		if p.spec.MaxLength > 0 {
			return syntaxErrorf(p.tpl, p.base+at, "only one max-length is allowed per variable")
		}
		if p.spec.Explode {
			return syntaxErrorf(p.tpl, p.base+at, "prefix must not follow an explode modifier")
		}
		p.lenStart = at + 1
	case "*":
		if p.spec.Explode {
			return syntaxErrorf(p.tpl, p.base+at, "explode modifier repeated")
		}
		if p.spec.MaxLength > 0 {
			return syntaxErrorf(p.tpl, p.base+at, "explode modifier must not follow a prefix")
		}
		p.spec.Explode = true
	case ",":
		p.specs = append(p.specs, p.spec)
		p.spec = VarSpec{}
		p.nameStart = at + 1
	default:
		return syntaxErrorf(p.tpl, p.base+at, "illegal character %q", unit)
	}
	return nil
}

func (p *exprParser) finish() error {
	end := len(p.body)
	if p.nameStart >= 0 {
		if err := p.closeName(end, ""); err != nil {
			return err
		}
	}
	if p.lenStart >= 0 {
		if err := p.closeLength(end); err != nil {
			return err
		}
	}
	p.specs = append(p.specs, p.spec)
	return nil
}

func (p *exprParser) closeName(at int, unit string) error {
	if p.nameStart == at {
		switch unit {
		case "", ":", "*", ",":
			return syntaxErrorf(p.tpl, p.base+at, "missing variable name")
		}
		return syntaxErrorf(p.tpl, p.base+at, "illegal character %q", unit)
	}
	p.spec = VarSpec{Name: p.body[p.nameStart:at]}
	p.nameStart = -1
	return nil
}

func (p *exprParser) closeLength(at int) error {
	if p.lenStart == at {
		return syntaxErrorf(p.tpl, p.base+at, "missing length after ':'")
	}
	digits := p.body[p.lenStart:at]
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > maxPrefixLength {
		return syntaxErrorf(p.tpl, p.base+p.lenStart, "max-length %s must be between 1 and %d", digits, maxPrefixLength)
	}
	p.spec.MaxLength = n
	p.lenStart = -1
	return nil
}
