package decode

import (
	"github.com/rvdecode/rvdecode/rvgo/bitvec"
	"github.com/rvdecode/rvdecode/rvgo/riscv"
)

// Decode parses a 32-character binary string (most-significant bit first) and decodes it.
func Decode(text string) (Instruction, error) {
	v, err := bitvec.Parse(text)
	if err != nil {
		return nil, err
	}
	return DecodeBits(v)
}

// DecodeWord decodes an instruction word.
func DecodeWord(w uint32) (Instruction, error) {
	return DecodeBits(bitvec.FromWord(w))
}

// FormatOf maps an opcode to the format that decodes it.
func FormatOf(opcode uint8) (Format, error) {
	switch opcode {
	case riscv.OpcodeOp:
		return FormatR, nil
	case riscv.OpcodeOpImm, riscv.OpcodeJALR:
		return FormatI, nil
	case riscv.OpcodeStore:
		return FormatS, nil
	case riscv.OpcodeBranch:
		return FormatSB, nil
	case riscv.OpcodeJAL:
		return FormatUJ, nil
	default:
		return 0, &riscv.UnsupportedOpcodeError{Opcode: opcode}
	}
}

// DecodeBits peeks at the opcode of v and decodes it with the matching format.
// On error the returned Instruction is nil.
func DecodeBits(v bitvec.BitVector) (Instruction, error) {
	opcode, err := bitvec.Extract(v, opcodeField, false)
	if err != nil {
		return nil, err
	}
	format, err := FormatOf(uint8(opcode))
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatR:
		return wrap(DecodeR(v))
	case FormatI:
		return wrap(DecodeI(v))
	case FormatS:
		return wrap(DecodeS(v))
	case FormatSB:
		return wrap(DecodeSB(v))
	case FormatUJ:
		return wrap(DecodeUJ(v))
	default:
		panic("unreachable format " + format.String())
	}
}

func wrap[T Instruction](inst T, err error) (Instruction, error) {
	if err != nil {
		return nil, err
	}
	return inst, nil
}
