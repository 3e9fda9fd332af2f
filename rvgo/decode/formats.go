package decode

import (
	"github.com/rvdecode/rvdecode/rvgo/bitvec"
	"github.com/rvdecode/rvdecode/rvgo/riscv"
)

// fieldReader extracts fields from one vector, keeping the first error.
type fieldReader struct {
	v   bitvec.BitVector
	err error
}

func (r *fieldReader) field(spec bitvec.FieldSpec, signed bool) int64 {
	if r.err != nil {
		return 0
	}
	out, err := bitvec.Extract(r.v, spec, signed)
	if err != nil {
		r.err = err
		return 0
	}
	return out
}

func (r *fieldReader) small(spec bitvec.FieldSpec) uint8 {
	return uint8(r.field(spec, false))
}

func (r *fieldReader) imm(spec bitvec.FieldSpec, signed bool) int32 {
	return int32(r.field(spec, signed))
}

// DecodeR reads the R-format fields and resolves the mnemonic by (func7, func3).
func DecodeR(v bitvec.BitVector) (R, error) {
	r := fieldReader{v: v}
	out := R{
		Opcode: r.small(opcodeField),
		Rd:     r.small(rdField),
		Rs1:    r.small(rs1Field),
		Rs2:    r.small(rs2Field),
		Funct3: r.small(funct3Field),
		Funct7: r.small(funct7Field),
	}
	if r.err != nil {
		return R{}, r.err
	}
	switch out.Funct7 {
	case riscv.Funct7Alt: // 0100000
		switch out.Funct3 {
		case 0: // 000 = SUB
			out.Op = "sub"
		case 5: // 101 = SRA
			out.Op = "sra"
		}
	case riscv.Funct7Base: // 0000000
		switch out.Funct3 {
		case 0: // 000 = ADD
			out.Op = "add"
		case 1: // 001 = SLL
			out.Op = "sll"
		case 2: // 010 = SLT
			out.Op = "slt"
		case 3: // 011 = SLTU
			out.Op = "sltu"
		case 4: // 100 = XOR
			out.Op = "xor"
		case 5: // 101 = SRL
			out.Op = "srl"
		case 6: // 110 = OR
			out.Op = "or"
		case 7: // 111 = AND
			out.Op = "and"
		}
	}
	if out.Op == "" {
		return R{}, &riscv.UnknownEncodingError{
			Format:    FormatR.String(),
			Opcode:    out.Opcode,
			Funct3:    out.Funct3,
			Funct7:    out.Funct7,
			HasFunct7: true,
		}
	}
	return out, nil
}

// DecodeI reads the I-format fields and resolves the mnemonic by (opcode, func3).
// The immediate is signed, except for sltiu which reads bits [20..30] unsigned.
func DecodeI(v bitvec.BitVector) (I, error) {
	r := fieldReader{v: v}
	out := I{
		Opcode: r.small(opcodeField),
		Rd:     r.small(rdField),
		Rs1:    r.small(rs1Field),
		Funct3: r.small(funct3Field),
		Imm:    r.imm(immIField, true),
	}
	if r.err != nil {
		return I{}, r.err
	}
	switch out.Opcode {
	case riscv.OpcodeOpImm:
		switch out.Funct3 {
		case 0: // 000 = ADDI
			out.Op = "addi"
		case 1: // 001 = SLLI
			out.Op = "slli"
		case 2: // 010 = SLTI
			out.Op = "slti"
		case 3: // 011 = SLTIU
			out.Op = "sltiu"
			out.Imm = r.imm(immSltiuField, false)
		case 4: // 100 = XORI
			out.Op = "xori"
		case 5: // 101 = SR~
			switch r.small(bitvec.FieldSpec{riscv.ShiftTypeBit}) {
			case 1:
				out.Op = "srai"
			default:
				out.Op = "srli"
			}
		case 6: // 110 = ORI
			out.Op = "ori"
		case 7: // 111 = ANDI
			out.Op = "andi"
		}
	case riscv.OpcodeLoad:
		switch out.Funct3 {
		case 0: // 000 = LB
			out.Op = "lb"
		case 1: // 001 = LH
			out.Op = "lh"
		case 2: // 010 = LW
			out.Op = "lw"
		}
	case riscv.OpcodeJALR:
		if out.Funct3 == 0 {
			out.Op = "jalr"
		}
	}
	if r.err != nil {
		return I{}, r.err
	}
	if out.Op == "" {
		return I{}, &riscv.UnknownEncodingError{Format: FormatI.String(), Opcode: out.Opcode, Funct3: out.Funct3}
	}
	return out, nil
}

// DecodeS reads the S-format fields; the immediate is split over [7-11] and [25-31].
func DecodeS(v bitvec.BitVector) (S, error) {
	r := fieldReader{v: v}
	out := S{
		Opcode: r.small(opcodeField),
		Rs1:    r.small(rs1Field),
		Rs2:    r.small(rs2Field),
		Funct3: r.small(funct3Field),
		Imm:    r.imm(immSField, true),
	}
	if r.err != nil {
		return S{}, r.err
	}
	switch out.Funct3 {
	case 0: // 000 = SB
		out.Op = "sb"
	case 1: // 001 = SH
		out.Op = "sh"
	case 2: // 010 = SW
		out.Op = "sw"
	default:
		return S{}, &riscv.UnknownEncodingError{Format: FormatS.String(), Opcode: out.Opcode, Funct3: out.Funct3}
	}
	return out, nil
}

// DecodeSB reads the SB-format fields. The immediate is a signed offset
// in multiples of 2 bytes, so it is doubled after extraction.
func DecodeSB(v bitvec.BitVector) (SB, error) {
	r := fieldReader{v: v}
	out := SB{
		Opcode: r.small(opcodeField),
		Rs1:    r.small(rs1Field),
		Rs2:    r.small(rs2Field),
		Funct3: r.small(funct3Field),
		Imm:    r.imm(immSBField, true) * 2,
	}
	if r.err != nil {
		return SB{}, r.err
	}
	switch out.Funct3 {
	case 0: // 000 = BEQ
		out.Op = "beq"
	case 1: // 001 = BNE
		out.Op = "bne"
	case 4: // 100 = BLT
		out.Op = "blt"
	case 5: // 101 = BGE
		out.Op = "bge"
	default:
		// bltu (110) and bgeu (111) are not resolved
		return SB{}, &riscv.UnknownEncodingError{Format: FormatSB.String(), Opcode: out.Opcode, Funct3: out.Funct3}
	}
	return out, nil
}

// DecodeUJ reads the UJ-format fields. The 20-bit immediate is read unsigned,
// bit 31 contributing its plain positional weight, then doubled.
func DecodeUJ(v bitvec.BitVector) (UJ, error) {
	r := fieldReader{v: v}
	out := UJ{
		Op:     "jal",
		Opcode: r.small(opcodeField),
		Rd:     r.small(rdField),
		Imm:    r.imm(immUJField, false) * 2,
	}
	if r.err != nil {
		return UJ{}, r.err
	}
	return out, nil
}
