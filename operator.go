package uritemplate

import "strings"

// operator describes how one RFC 6570 expression type renders its
// variables (RFC 6570 Appendix A).
type operator struct {
	symbol    string
	separator byte
	named     bool
	ifEmpty   string
	first     string
	encoder   encoder
}

// reservedOperators are reserved by RFC 6570 Section 2.2 for future
// extensions and may not start an expression.
const reservedOperators = "=,!@|"

var (
	opSimple = &operator{symbol: "", separator: ',', first: "", encoder: encodeUnreserved}

	// operators is built once and never mutated.
	operators = func() map[byte]*operator {
		table := []*operator{
			{symbol: "+", separator: ',', first: "", encoder: encodeReserved},
			{symbol: "#", separator: ',', first: "#", encoder: encodeReserved},
			{symbol: ".", separator: '.', first: ".", encoder: encodeUnreserved},
			{symbol: "/", separator: '/', first: "/", encoder: encodeUnreserved},
			{symbol: ";", separator: ';', named: true, first: ";", encoder: encodeUnreserved},
			{symbol: "?", separator: '&', named: true, ifEmpty: "=", first: "?", encoder: encodeUnreserved},
			{symbol: "&", separator: '&', named: true, ifEmpty: "=", first: "&", encoder: encodeUnreserved},
		}

		m := make(map[byte]*operator, len(table))
		for _, op := range table {
			m[op.symbol[0]] = op
		}
		return m
	}()
)

// lookupOperator resolves the operator introduced by c. explicit is false
// when c is not an operator, in which case c belongs to the first varname.
// ok is false when c is one of the reserved operators.
func lookupOperator(c byte) (op *operator, explicit, ok bool) {
	if op, found := operators[c]; found {
		return op, true, true
	}
	if strings.IndexByte(reservedOperators, c) >= 0 {
		return nil, false, false
	}
	return opSimple, false, true
}

func (op *operator) String() string {
	return op.symbol
}
