package uritemplate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumOctets(t *testing.T) {
	tests := []struct {
		lead     byte
		expected int
	}{
		{lead: 0x00, expected: 1},
		{lead: 0x41, expected: 1},
		{lead: 0x7F, expected: 1},
		{lead: 0x80, expected: 0},
		{lead: 0xC1, expected: 0},
		{lead: 0xC2, expected: 2},
		{lead: 0xDF, expected: 2},
		{lead: 0xE0, expected: 3},
		{lead: 0xEF, expected: 3},
		{lead: 0xF0, expected: 4},
		{lead: 0xF4, expected: 4},
		{lead: 0xF5, expected: 0},
		{lead: 0xFF, expected: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, numOctets(tt.lead), "numOctets(%#x)", tt.lead)
	}
}

func TestIsContinuation(t *testing.T) {
	assert.False(t, isContinuation(0x7F))
	assert.True(t, isContinuation(0x80))
	assert.True(t, isContinuation(0xBF))
	assert.False(t, isContinuation(0xC0))
}

func TestIsPctTriplet(t *testing.T) {
	assert.True(t, isPctTriplet("%20", 0))
	assert.True(t, isPctTriplet("a%af", 1))
	assert.False(t, isPctTriplet("%2", 0))
	assert.False(t, isPctTriplet("%G0", 0))
	assert.False(t, isPctTriplet("x20", 0))
	assert.False(t, isPctTriplet("%20", 1))
}

func TestPctSpanLen(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		pos      int
		expected int
	}{
		{name: "ascii octet", input: "%20", expected: 3},
		{name: "lowercase hex", input: "%7e", expected: 3},
		{name: "two octets", input: "%C3%B6", expected: 6},
		{name: "three octets", input: "%E2%82%AC", expected: 9},
		{name: "four octets", input: "%F0%9F%98%80", expected: 12},
		{name: "span at offset", input: "a%C3%B6b", pos: 1, expected: 6},
		{name: "truncated sequence", input: "%C3", expected: 0},
		{name: "bad continuation", input: "%C3%20", expected: 0},
		{name: "raw continuation", input: "%C3\xb6", expected: 0},
		{name: "invalid lead", input: "%80", expected: 0},
		{name: "overlong lead", input: "%C0%80", expected: 0},
		{name: "lone percent", input: "%", expected: 0},
		{name: "no percent", input: "abc", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pctSpanLen(tt.input, tt.pos))
		})
	}
}

func TestUnits(t *testing.T) {
	t.Run("mixed input", func(t *testing.T) {
		var got []string
		var offsets []int
		for i, u := range units("a%C3%B6ö%2x%") {
			offsets = append(offsets, i)
			got = append(got, u)
		}
		assert.Equal(t, []string{"a", "%C3%B6", "ö", "%", "2", "x", "%"}, got)
		assert.Equal(t, []int{0, 1, 7, 9, 10, 11, 12}, offsets)
	})

	t.Run("invalid utf8 byte", func(t *testing.T) {
		var got []string
		for _, u := range units("a\xffb") {
			got = append(got, u)
		}
		assert.Equal(t, []string{"a", "\xff", "b"}, got)
	})

	t.Run("stops early", func(t *testing.T) {
		n := 0
		for range units("abcdef") {
			n++
			if n == 2 {
				break
			}
		}
		assert.Equal(t, 2, n)
	})

	t.Run("restartable", func(t *testing.T) {
		seq := units("xy")
		for range 2 {
			var got []string
			for _, u := range seq {
				got = append(got, u)
			}
			assert.Equal(t, []string{"x", "y"}, got)
		}
	})
}

func TestTruncateUnits(t *testing.T) {
	tests := []struct {
		input    string
		n        int
		expected string
	}{
		{input: "Hello World!", n: 5, expected: "Hello"},
		{input: "value", n: 30, expected: "value"},
		{input: "wörld", n: 2, expected: "wö"},
		{input: "%C3%B6abc", n: 2, expected: "%C3%B6a"},
		{input: "", n: 3, expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, truncateUnits(tt.input, tt.n), "truncateUnits(%q, %d)", tt.input, tt.n)
	}
}

func TestWritePctEncoded(t *testing.T) {
	var b strings.Builder
	writePctEncoded(&b, "ö")
	writePctEncoded(&b, " ")
	writePctEncoded(&b, "\xff")
	assert.Equal(t, "%C3%B6%20%FF", b.String())
}

func TestEncoder(t *testing.T) {
	tests := []struct {
		name     string
		enc      encoder
		input    string
		expected string
	}{
		{name: "unreserved kept", enc: encodeUnreserved, input: "az-._~09", expected: "az-._~09"},
		{name: "reserved encoded", enc: encodeUnreserved, input: "a/b?c", expected: "a%2Fb%3Fc"},
		{name: "reserved passed", enc: encodeReserved, input: "a/b?c", expected: "a/b?c"},
		{name: "space", enc: encodeReserved, input: "Hello World!", expected: "Hello%20World!"},
		{name: "lone percent", enc: encodeUnreserved, input: "50%", expected: "50%25"},
		{name: "utf8", enc: encodeUnreserved, input: "héllo", expected: "h%C3%A9llo"},
		{name: "pre-encoded kept", enc: encodeUnreserved, input: "a%20b%C3%B6", expected: "a%20b%C3%B6"},
		{name: "broken span", enc: encodeUnreserved, input: "%C3x", expected: "%25C3x"},
		{name: "invalid utf8", enc: encodeUnreserved, input: "\xfe", expected: "%FE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.enc.encode(tt.input))
		})
	}
}

func TestEncodeIdempotent(t *testing.T) {
	inputs := []string{"Hello World!", "wörld/€", "50% off", "a b%20c", "☃?=&"}

	for _, in := range inputs {
		for _, enc := range []encoder{encodeUnreserved, encodeReserved} {
			once := enc.encode(in)
			assert.Equal(t, once, enc.encode(once), "encode twice %q", in)
		}
	}
}

func TestEncodeLiteral(t *testing.T) {
	assert.Equal(t, "http://example.com/~a;b=c?d#e", encodeLiteral("http://example.com/~a;b=c?d#e"))
	assert.Equal(t, "a%20b", encodeLiteral("a b"))
	assert.Equal(t, "%3C%3E%22", encodeLiteral("<>\""))
	assert.Equal(t, "caf%C3%A9", encodeLiteral("café"))
	assert.Equal(t, "100%25", encodeLiteral("100%"))
}
