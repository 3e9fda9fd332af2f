package riscv

// Major opcodes, the numeric value of instruction bits [0-6].
const (
	OpcodeLoad   = 0x03 // 000_0011: lb, lh, lw
	OpcodeOpImm  = 0x13 // 001_0011: immediate arithmetic and logic
	OpcodeStore  = 0x23 // 010_0011: sb, sh, sw
	OpcodeOp     = 0x33 // 011_0011: register arithmetic and logic
	OpcodeBranch = 0x63 // 110_0011: conditional branches
	OpcodeJALR   = 0x67 // 110_0111
	OpcodeJAL    = 0x6F // 110_1111
)

// Funct7 selectors of the R-format.
const (
	Funct7Base = 0x00 // 000_0000
	Funct7Alt  = 0x20 // 010_0000: sub, sra
)

// InstructionWidth is the number of bits in a single, uncompressed instruction.
const InstructionWidth = 32

// ShiftTypeBit is the instruction bit that selects arithmetic (1) over logical (0) right shifts.
const ShiftTypeBit = 30
