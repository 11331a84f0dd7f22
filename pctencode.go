package uritemplate

import (
	"iter"
	"strings"
	"unicode/utf8"
)

const upperHex = "0123456789ABCDEF"

// numOctets returns the length of the UTF-8 sequence introduced by lead,
// or 0 when lead cannot start a well-formed sequence (RFC 3629 Section 4).
func numOctets(lead byte) int {
	switch {
	case lead <= 0x7F:
		return 1
	case lead >= 0xC2 && lead <= 0xDF:
		return 2
	case lead >= 0xE0 && lead <= 0xEF:
		return 3
	case lead >= 0xF0 && lead <= 0xF4:
		return 4
	}
	return 0
}

// isContinuation reports whether b is a UTF-8 continuation octet.
func isContinuation(b byte) bool {
	return b >= 0x80 && b <= 0xBF
}

// isPctTriplet reports whether s[i:] starts with "%" HEXDIG HEXDIG.
func isPctTriplet(s string, i int) bool {
	return i >= 0 && i+2 < len(s) && s[i] == '%' && isHexDigit(s[i+1]) && isHexDigit(s[i+2])
}

func unhex(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	}
	return c - '0'
}

// pctOctet decodes the triplet at s[i]. The caller checks isPctTriplet first.
func pctOctet(s string, i int) byte {
	return unhex(s[i+1])<<4 | unhex(s[i+2])
}

// pctSpanLen returns the byte length of the percent-encoded UTF-8 sequence
// starting at s[i], or 0 if none starts there. Every continuation octet
// must itself be a triplet holding a legal continuation byte.
func pctSpanLen(s string, i int) int {
	if !isPctTriplet(s, i) {
		return 0
	}
	n := numOctets(pctOctet(s, i))
	if n == 0 {
		return 0
	}
	for k := 1; k < n; k++ {
		j := i + 3*k
		if !isPctTriplet(s, j) || !isContinuation(pctOctet(s, j)) {
			return 0
		}
	}
	return 3 * n
}

// isPctSpan reports whether unit is exactly one percent-encoded sequence.
func isPctSpan(unit string) bool {
	return unit != "" && pctSpanLen(unit, 0) == len(unit)
}

// unitAt returns the logical unit starting at s[i]: a complete
// percent-encoded sequence such as "%C3%B6", one UTF-8 encoded rune, or a
// single byte of invalid UTF-8. Units are never split by scanning.
func unitAt(s string, i int) string {
	if n := pctSpanLen(s, i); n > 0 {
		return s[i : i+n]
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[i : i+size]
}

// units yields the byte offset and text of every logical unit of s.
func units(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; i < len(s); {
			u := unitAt(s, i)
			if !yield(i, u) {
				return
			}
			i += len(u)
		}
	}
}

// truncateUnits returns the first n logical units of s.
func truncateUnits(s string, n int) string {
	count := 0
	for i := range units(s) {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// writePctEncoded writes every octet of unit as an uppercase %XX triplet.
func writePctEncoded(b *strings.Builder, unit string) {
	for i := 0; i < len(unit); i++ {
		c := unit[i]
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
}

// encoder selects which characters pass through unencoded. Valid
// percent-encoded sequences always pass through, so encoding is idempotent.
type encoder uint8

const (
	// encodeUnreserved passes only unreserved characters (U).
	encodeUnreserved encoder = iota
	// encodeReserved also passes reserved characters (U+R).
	encodeReserved
)

func (e encoder) passes(unit string) bool {
	if isUnreserved(unit) {
		return true
	}
	return e == encodeReserved && isReserved(unit)
}

func (e encoder) write(b *strings.Builder, s string) {
	for _, u := range units(s) {
		if (u[0] == '%' && len(u) > 1) || e.passes(u) {
			b.WriteString(u)
			continue
		}
		writePctEncoded(b, u)
	}
}

func (e encoder) encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	e.write(&b, s)
	return b.String()
}

// encodeLiteral encodes template literals and varnames: reserved and
// unreserved characters are copied, anything else is percent-encoded.
func encodeLiteral(s string) string {
	return encodeReserved.encode(s)
}
