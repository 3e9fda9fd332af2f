package slow

import "github.com/holiman/uint256"

// These are type-safe pure functions *styled to translate to yul*, to use uint256 variables for 64 bit math.

// U64 is like a Go uint64, always within range, but represented as uint256 in memory with 0 padding.
type U64 uint256.Int

func (v U64) val() uint64 {
	return (*uint256.Int)(&v).Uint64()
}

func toU256(v uint8) U256 {
	return *uint256.NewInt(uint64(v))
}

func toU64(v uint8) U64 {
	return U64(toU256(v))
}

func shortToU64(v uint16) U64 {
	return U64(*uint256.NewInt(uint64(v)))
}

func wordToU64(v uint32) U64 {
	return U64(*uint256.NewInt(uint64(v)))
}

func u256ToU64(v U256) U64 {
	return U64(and(v, U256(u64Mask())))
}

func u64Mask() U64 { // max uint64
	return U64(shr(toU256(192), not(U256{}))) // 256-64 = 192
}

// signExtend64 extends the sign bit at position bit over all higher bits.
func signExtend64(v U64, bit U64) U64 {
	switch and(U256(v), shl(U256(bit), toU256(1))) {
	case U256{}:
		// fill with zeroes, by masking
		return U64(and(U256(v), shr(sub63(bit), U256(u64Mask()))))
	default:
		// fill with ones, by or-ing
		return u256ToU64(or(U256(v), shl(U256(bit), U256(u64Mask()))))
	}
}

func sub63(bit U64) U256 {
	out := toU256(63)
	b := U256(bit)
	out.Sub(&out, &b)
	return out
}

func and64(x, y U64) (out U64) {
	out = U64(and(U256(x), U256(y)))
	return
}

func or64(x, y U64) (out U64) {
	out = U64(or(U256(x), U256(y)))
	return
}

// returns y << x, truncated to 64 bits
func shl64(x, y U64) (out U64) {
	out = u256ToU64(shl(U256(x), U256(y)))
	return
}

// returns y >> x
func shr64(x, y U64) (out U64) {
	out = U64(shr(U256(x), U256(y)))
	return
}
