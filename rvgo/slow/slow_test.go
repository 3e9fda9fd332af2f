package slow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWord(t *testing.T) {
	for _, tc := range []struct {
		name string
		word uint32
		want Fields
	}{
		{
			name: "sub",
			word: 0x402081b3,
			want: Fields{Opcode: 51, Rd: 3, Rs1: 1, Rs2: 2, Funct7: 32, ShiftType: 1,
				ImmI: 1026, ImmSltiu: 1026, ImmS: 1027, ImmSB: 3074, ImmUJ: 33794},
		},
		{
			name: "sb",
			word: 0xfe320823,
			want: Fields{Opcode: 35, Rd: 16, Rs1: 4, Rs2: 3, Funct7: 127, ShiftType: 1,
				ImmI: -29, ImmSltiu: 2019, ImmS: -16, ImmSB: -2064, ImmUJ: 1183714},
		},
		{
			name: "bne",
			word: 0xfe209ee3,
			want: Fields{Opcode: 99, Rd: 29, Funct3: 1, Rs1: 1, Rs2: 2, Funct7: 127, ShiftType: 1,
				ImmI: -30, ImmSltiu: 2018, ImmS: -3, ImmSB: -4, ImmUJ: 1087458},
		},
		{
			name: "jal",
			word: 0x00a000ef,
			want: Fields{Opcode: 111, Rd: 1, Rs2: 10,
				ImmI: 10, ImmSltiu: 10, ImmS: 1, ImmSB: 2048, ImmUJ: 10},
		},
		{
			name: "sltiu",
			word: 0x80003093,
			want: Fields{Opcode: 19, Rd: 1, Funct3: 3, Funct7: 64,
				ImmI: -2048, ImmSltiu: 0, ImmS: -2047, ImmSB: -2048, ImmUJ: 1060864},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ParseWord(tc.word))
		})
	}
}

func TestSignExtend64(t *testing.T) {
	require.Equal(t, int64(-1), Signed(signExtend64(shortToU64(0xFFF), toU64(11))))
	require.Equal(t, int64(0x7FF), Signed(signExtend64(shortToU64(0x7FF), toU64(11))))
	require.Equal(t, int64(-4096), Signed(signExtend64(shortToU64(0x1000), toU64(12))))
}

func TestIsCompressed(t *testing.T) {
	require.False(t, IsCompressed(0x00a000ef))
	require.True(t, IsCompressed(0x4501)) // c.li a0, 0
	require.True(t, IsCompressed(0x8082)) // c.ret
}
