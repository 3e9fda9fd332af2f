package bitvec

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/rvdecode/rvdecode/rvgo/riscv"
)

// BitVector is a fixed-width sequence of bits, indexed least-significant bit first.
// It is immutable: none of its methods modify the underlying bits.
type BitVector struct {
	bits  *bitset.BitSet
	width uint
}

// MalformedInputError describes why text could not be read as an instruction bit string.
type MalformedInputError struct {
	Length int
	// Pos is the offending character offset, or -1 if the length is wrong.
	Pos  int
	Char rune
}

func (e *MalformedInputError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("expected %d binary digits, got %d characters", riscv.InstructionWidth, e.Length)
	}
	return fmt.Sprintf("invalid binary digit %q at offset %d", e.Char, e.Pos)
}

func (e *MalformedInputError) Unwrap() error {
	return riscv.ErrMalformedInput
}

// Parse reads a string of exactly 32 '0'/'1' characters, most-significant bit first.
// The rightmost character becomes index 0 of the result.
func Parse(s string) (BitVector, error) {
	if len(s) != riscv.InstructionWidth {
		return BitVector{}, &MalformedInputError{Length: len(s), Pos: -1}
	}
	out := BitVector{bits: bitset.New(riscv.InstructionWidth), width: riscv.InstructionWidth}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			out.bits.Set(uint(len(s) - 1 - i))
		default:
			return BitVector{}, &MalformedInputError{Length: len(s), Pos: i, Char: rune(s[i])}
		}
	}
	return out, nil
}

// FromWord builds a 32-bit vector from an instruction word, bit i of w at index i.
func FromWord(w uint32) BitVector {
	out := BitVector{bits: bitset.New(riscv.InstructionWidth), width: riscv.InstructionWidth}
	for i := uint(0); i < riscv.InstructionWidth; i++ {
		if w&(1<<i) != 0 {
			out.bits.Set(i)
		}
	}
	return out
}

// Len returns the width of the vector in bits.
func (v BitVector) Len() int {
	return int(v.width)
}

// Bit returns the bit at index i (0 = least significant).
// Indices outside the vector read as 0; use Extract for a checked read.
func (v BitVector) Bit(i uint) uint8 {
	if v.bits == nil || i >= v.width || !v.bits.Test(i) {
		return 0
	}
	return 1
}

// Word packs the vector back into an instruction word.
func (v BitVector) Word() uint32 {
	var w uint32
	for i := uint(0); i < v.width && i < 32; i++ {
		w |= uint32(v.Bit(i)) << i
	}
	return w
}

// String renders the vector most-significant bit first, the same layout Parse accepts.
func (v BitVector) String() string {
	var sb strings.Builder
	sb.Grow(int(v.width))
	for i := int(v.width) - 1; i >= 0; i-- {
		sb.WriteByte('0' + v.Bit(uint(i)))
	}
	return sb.String()
}
