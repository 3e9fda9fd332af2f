package bitvec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rvdecode/rvdecode/rvgo/riscv"
)

func TestParse(t *testing.T) {
	t.Run("LSBFirst", func(t *testing.T) {
		v, err := Parse("10000000000000000000000000000011")
		require.NoError(t, err)
		require.Equal(t, 32, v.Len())
		require.Equal(t, uint8(1), v.Bit(0))
		require.Equal(t, uint8(1), v.Bit(1))
		require.Equal(t, uint8(0), v.Bit(2))
		require.Equal(t, uint8(1), v.Bit(31))
		require.Equal(t, uint32(0x80000003), v.Word())
	})

	t.Run("RoundTripText", func(t *testing.T) {
		in := "01000000001000001000000110110011"
		v, err := Parse(in)
		require.NoError(t, err)
		require.Equal(t, in, v.String())
		require.Equal(t, uint32(0x402081b3), v.Word())
	})

	for _, tc := range []struct {
		name string
		in   string
		pos  int
	}{
		{name: "Empty", in: "", pos: -1},
		{name: "Short", in: strings.Repeat("0", 31), pos: -1},
		{name: "Long", in: strings.Repeat("1", 33), pos: -1},
		{name: "Digit", in: strings.Repeat("0", 30) + "20", pos: 30},
		{name: "Space", in: " " + strings.Repeat("0", 31), pos: 0},
		{name: "Letter", in: strings.Repeat("0", 16) + "x" + strings.Repeat("0", 15), pos: 16},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.in)
			require.ErrorIs(t, err, riscv.ErrMalformedInput)
			var malformed *MalformedInputError
			require.ErrorAs(t, err, &malformed)
			require.Equal(t, tc.pos, malformed.Pos)
		})
	}

	t.Run("MultiByteRune", func(t *testing.T) {
		// 30 ASCII digits + one 2-byte rune is 32 bytes but not 32 binary digits
		_, err := Parse(strings.Repeat("0", 30) + "é")
		require.ErrorIs(t, err, riscv.ErrMalformedInput)
	})
}

func TestFromWord(t *testing.T) {
	for _, w := range []uint32{0, 1, 0x80000000, 0xfe209ee3, 0xffffffff} {
		v := FromWord(w)
		require.Equal(t, w, v.Word())
		back, err := Parse(v.String())
		require.NoError(t, err)
		require.Equal(t, w, back.Word())
	}
}

func TestBitOutOfRange(t *testing.T) {
	v := FromWord(0xffffffff)
	require.Equal(t, uint8(0), v.Bit(32))
	require.Equal(t, uint8(0), BitVector{}.Bit(0))
}
