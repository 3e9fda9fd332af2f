package bitvec

import (
	"fmt"

	"github.com/rvdecode/rvdecode/rvgo/riscv"
)

// FieldSpec lists the vector indices a value is assembled from.
// The bit at FieldSpec[0] becomes the least significant bit of the value,
// the bit at the last index the most significant (and the sign bit, when signed).
type FieldSpec []uint

// Span returns the contiguous spec lo, lo+1, ..., hi.
func Span(lo, hi uint) FieldSpec {
	if hi < lo {
		return nil
	}
	out := make(FieldSpec, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

// Join concatenates specs, the first spec supplying the lowest bits.
func Join(specs ...FieldSpec) FieldSpec {
	var n int
	for _, s := range specs {
		n += len(s)
	}
	out := make(FieldSpec, 0, n)
	for _, s := range specs {
		out = append(out, s...)
	}
	return out
}

// IndexOutOfRangeError reports a field spec that reaches past the end of a vector.
type IndexOutOfRangeError struct {
	Index uint
	Width int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("bit index %d outside of %d-bit vector", e.Index, e.Width)
}

func (e *IndexOutOfRangeError) Unwrap() error {
	return riscv.ErrIndexOutOfRange
}

// Extract assembles the bits of v selected by spec into an integer.
//
// In signed mode the bit selected by the last index is the two's-complement sign bit:
// when it is set, the remaining bits are inverted, summed, incremented and negated.
func Extract(v BitVector, spec FieldSpec, signed bool) (int64, error) {
	for _, idx := range spec {
		if idx >= v.width {
			return 0, &IndexOutOfRangeError{Index: idx, Width: v.Len()}
		}
	}
	if len(spec) == 0 {
		return 0, nil
	}
	if !signed || v.Bit(spec[len(spec)-1]) == 0 {
		var out int64
		for i, idx := range spec {
			out |= int64(v.Bit(idx)) << i
		}
		return out, nil
	}
	var magnitude int64
	for i, idx := range spec[:len(spec)-1] {
		magnitude |= int64(v.Bit(idx)^1) << i
	}
	return -(magnitude + 1), nil
}
