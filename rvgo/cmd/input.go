package cmd

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rvdecode/rvdecode/rvgo/bitvec"
)

// ParseInput reads one instruction: either 32 binary digits, most-significant first,
// or a 0x-prefixed big-endian hex word of exactly 4 bytes.
func ParseInput(s string) (bitvec.BitVector, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return bitvec.Parse(s)
	}
	data, err := hexutil.Decode("0x" + s[2:])
	if err != nil {
		return bitvec.BitVector{}, fmt.Errorf("invalid hex instruction %q: %w", s, err)
	}
	if len(data) != 4 {
		return bitvec.BitVector{}, fmt.Errorf("invalid hex instruction %q: expected 4 bytes, got %d", s, len(data))
	}
	return bitvec.FromWord(binary.BigEndian.Uint32(data)), nil
}

// skipLine reports whether an input line carries no instruction.
func skipLine(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#")
}
