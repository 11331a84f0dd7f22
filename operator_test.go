package uritemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorTable(t *testing.T) {
	tests := []struct {
		symbol    byte
		separator byte
		named     bool
		ifEmpty   string
		first     string
		encoder   encoder
	}{
		{symbol: '+', separator: ',', first: "", encoder: encodeReserved},
		{symbol: '#', separator: ',', first: "#", encoder: encodeReserved},
		{symbol: '.', separator: '.', first: ".", encoder: encodeUnreserved},
		{symbol: '/', separator: '/', first: "/", encoder: encodeUnreserved},
		{symbol: ';', separator: ';', named: true, first: ";", encoder: encodeUnreserved},
		{symbol: '?', separator: '&', named: true, ifEmpty: "=", first: "?", encoder: encodeUnreserved},
		{symbol: '&', separator: '&', named: true, ifEmpty: "=", first: "&", encoder: encodeUnreserved},
	}

	for _, tt := range tests {
		t.Run(string(tt.symbol), func(t *testing.T) {
			op, explicit, ok := lookupOperator(tt.symbol)
			require.True(t, ok)
			require.True(t, explicit)
			assert.Equal(t, string(tt.symbol), op.String())
			assert.Equal(t, tt.separator, op.separator)
			assert.Equal(t, tt.named, op.named)
			assert.Equal(t, tt.ifEmpty, op.ifEmpty)
			assert.Equal(t, tt.first, op.first)
			assert.Equal(t, tt.encoder, op.encoder)
		})
	}

	assert.Len(t, operators, 7)
}

func TestLookupOperatorReserved(t *testing.T) {
	for _, c := range []byte(reservedOperators) {
		op, _, ok := lookupOperator(c)
		assert.False(t, ok, "operator %q", c)
		assert.Nil(t, op)
	}
}

func TestLookupOperatorFallback(t *testing.T) {
	for _, c := range []byte("aZ0_%$~-") {
		op, explicit, ok := lookupOperator(c)
		require.True(t, ok, "operator %q", c)
		assert.False(t, explicit)
		assert.Same(t, opSimple, op)
		assert.Equal(t, byte(','), op.separator)
		assert.False(t, op.named)
		assert.Empty(t, op.first)
		assert.Equal(t, encodeUnreserved, op.encoder)
	}
}
