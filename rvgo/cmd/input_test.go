package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rvdecode/rvdecode/rvgo/decode"
	"github.com/rvdecode/rvdecode/rvgo/riscv"
)

func TestParseInput(t *testing.T) {
	t.Run("Binary", func(t *testing.T) {
		v, err := ParseInput("01000000001000001000000110110011")
		require.NoError(t, err)
		require.Equal(t, uint32(0x402081b3), v.Word())
	})
	t.Run("Hex", func(t *testing.T) {
		v, err := ParseInput("0x402081b3")
		require.NoError(t, err)
		require.Equal(t, "01000000001000001000000110110011", v.String())
	})
	t.Run("HexLeadingZeros", func(t *testing.T) {
		v, err := ParseInput("  0X00a000ef\t")
		require.NoError(t, err)
		require.Equal(t, uint32(0x00a000ef), v.Word())
	})
	t.Run("HexWrongLength", func(t *testing.T) {
		_, err := ParseInput("0x1234")
		require.ErrorContains(t, err, "expected 4 bytes, got 2")
	})
	t.Run("HexInvalid", func(t *testing.T) {
		_, err := ParseInput("0xzz00aa11")
		require.ErrorContains(t, err, "invalid hex instruction")
	})
	t.Run("MalformedBinary", func(t *testing.T) {
		_, err := ParseInput("0101")
		require.ErrorIs(t, err, riscv.ErrMalformedInput)
	})
}

func TestSkipLine(t *testing.T) {
	require.True(t, skipLine(""))
	require.True(t, skipLine("   "))
	require.True(t, skipLine("# comment"))
	require.False(t, skipLine("0x402081b3"))
}

func TestCrossCheck(t *testing.T) {
	for _, s := range Samples {
		t.Run(s.Format, func(t *testing.T) {
			v, err := ParseInput(s.Bits)
			require.NoError(t, err)
			inst, err := decode.DecodeBits(v)
			require.NoError(t, err)
			require.NoError(t, CrossCheck(inst, v.Word()))
		})
	}

	t.Run("Sltiu", func(t *testing.T) {
		inst, err := decode.DecodeWord(0xfff03093)
		require.NoError(t, err)
		require.Equal(t, "sltiu", inst.Mnemonic())
		require.NoError(t, CrossCheck(inst, 0xfff03093))
	})

	t.Run("Mismatch", func(t *testing.T) {
		inst := decode.R{Op: "sub", Opcode: 51, Rd: 4, Rs1: 1, Rs2: 2, Funct7: 32}
		err := CrossCheck(inst, 0x402081b3)
		require.ErrorContains(t, err, "field rd of sub mismatch: decoded 4, word parser 3")
	})
}

func TestColorEnabled(t *testing.T) {
	on, err := colorEnabled("always", nil)
	require.NoError(t, err)
	require.True(t, on)

	on, err = colorEnabled("never", nil)
	require.NoError(t, err)
	require.False(t, on)

	on, err = colorEnabled("auto", new(nopWriter))
	require.NoError(t, err)
	require.False(t, on)

	_, err = colorEnabled("sometimes", nil)
	require.ErrorContains(t, err, "invalid color mode")
}

type nopWriter struct{}

func (nopWriter) Write(b []byte) (int, error) { return len(b), nil }
