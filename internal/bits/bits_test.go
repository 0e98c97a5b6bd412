package bits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordBitRoundTrip(t *testing.T) {
	w := FromUint64(0x32, 8)
	require.True(t, w.Bit(1))
	require.True(t, w.Bit(4))
	require.True(t, w.Bit(5))
	require.False(t, w.Bit(0))
	require.False(t, w.Bit(2))
	require.False(t, w.Bit(3))
}

func TestWordWithBitAssembly(t *testing.T) {
	w := NewWord(8)
	w = w.WithBit(4, true)
	w = w.WithBit(1, false)
	require.Equal(t, uint64(0x10), w.Uint64())
}

func TestHexAndParse(t *testing.T) {
	require.Equal(t, "0xb", HexString(0xB))

	v, err := ParseHexOrDec("0x2A")
	require.NoError(t, err)
	require.Equal(t, uint64(0x2A), v)

	v, err = ParseHexOrDec("42")
	require.NoError(t, err)
	require.Equal(t, uint64(42), v)
}
