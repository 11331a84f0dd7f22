package uritemplate

import "strings"

// expand renders the expression per RFC 6570 Section 3.2.1. Undefined
// variables are skipped and do not emit a separator or the first token.
func (e *variableExpr) expand(b *strings.Builder, vars Variables) error {
	op := e.op
	first := true

	for _, spec := range e.specs {
		val := vars[spec.Name]
		if !val.IsDefined() {
			continue
		}

		if first {
			b.WriteString(op.first)
			first = false
		} else {
			b.WriteByte(op.separator)
		}

		switch val.kind {
		case KindScalar:
			e.expandScalar(b, spec, val.scalar)
		case KindList, KindMap:
			if spec.MaxLength > 0 {
				return &ExpansionError{
					Expression: e.source,
					Varname:    spec.Name,
					Msg:        "prefix modifiers are not applicable to " + val.kind.String() + " values",
				}
			}
			if spec.Explode {
				e.expandExploded(b, spec, val)
			} else {
				e.expandJoined(b, spec, val)
			}
		}
	}
	return nil
}

func (e *variableExpr) expandScalar(b *strings.Builder, spec VarSpec, s string) {
	op := e.op
	if op.named {
		b.WriteString(encodeLiteral(spec.Name))
		if s == "" {
			b.WriteString(op.ifEmpty)
			return
		}
		b.WriteByte('=')
	}
	if spec.MaxLength > 0 {
		s = truncateUnits(s, spec.MaxLength)
	}
	op.encoder.write(b, s)
}

// expandJoined renders a composite as one comma-separated run.
func (e *variableExpr) expandJoined(b *strings.Builder, spec VarSpec, val Value) {
	op := e.op
	if op.named {
		b.WriteString(encodeLiteral(spec.Name))
		b.WriteByte('=')
	}

	n := 0
	if val.kind == KindList {
		for _, item := range val.list {
			if !item.IsDefined() {
				continue
			}
			if n > 0 {
				b.WriteByte(',')
			}
			op.encoder.write(b, item.String())
			n++
		}
		return
	}

	for _, p := range val.pairs {
		if !p.Value.IsDefined() {
			continue
		}
		if n > 0 {
			b.WriteByte(',')
		}
		op.encoder.write(b, p.Key)
		b.WriteByte(',')
		op.encoder.write(b, p.Value.String())
		n++
	}
}

// expandExploded renders each member of a composite separately, joined by
// the operator's separator.
func (e *variableExpr) expandExploded(b *strings.Builder, spec VarSpec, val Value) {
	op := e.op

	n := 0
	if val.kind == KindList {
		for _, item := range val.list {
			if !item.IsDefined() {
				continue
			}
			if n > 0 {
				b.WriteByte(op.separator)
			}
			if op.named {
				b.WriteString(encodeLiteral(spec.Name))
				b.WriteByte('=')
			}
			op.encoder.write(b, item.String())
			n++
		}
		return
	}

	for _, p := range val.pairs {
		if !p.Value.IsDefined() {
			continue
		}
		if n > 0 {
			b.WriteByte(op.separator)
		}
		op.encoder.write(b, p.Key)
		b.WriteByte('=')
		op.encoder.write(b, p.Value.String())
		n++
	}
}
