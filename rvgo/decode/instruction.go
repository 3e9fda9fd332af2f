package decode

// Format is the instruction format tag of a decoded instruction.
type Format uint8

const (
	FormatR Format = iota + 1
	FormatI
	FormatS
	FormatSB
	FormatUJ
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatS:
		return "S"
	case FormatSB:
		return "SB"
	case FormatUJ:
		return "UJ"
	default:
		return "?"
	}
}

// Instruction is a decoded instruction: exactly one of R, I, S, SB or UJ.
// The set is closed; switch on the concrete type to reach the fields.
type Instruction interface {
	Format() Format
	Mnemonic() string
	instruction()
}

// R is a register-register instruction.
type R struct {
	Op     string
	Opcode uint8
	Rd     uint8
	Rs1    uint8
	Rs2    uint8
	Funct3 uint8
	Funct7 uint8
}

// I is a register-immediate, load or jalr instruction.
type I struct {
	Op     string
	Opcode uint8
	Rd     uint8
	Rs1    uint8
	Funct3 uint8
	Imm    int32
}

// S is a store instruction.
type S struct {
	Op     string
	Opcode uint8
	Rs1    uint8
	Rs2    uint8
	Funct3 uint8
	Imm    int32
}

// SB is a conditional branch. Imm is the byte offset, always even.
type SB struct {
	Op     string
	Opcode uint8
	Rs1    uint8
	Rs2    uint8
	Funct3 uint8
	Imm    int32
}

// UJ is a jal instruction. Imm is the byte offset, always even.
type UJ struct {
	Op     string
	Opcode uint8
	Rd     uint8
	Imm    int32
}

func (R) Format() Format  { return FormatR }
func (I) Format() Format  { return FormatI }
func (S) Format() Format  { return FormatS }
func (SB) Format() Format { return FormatSB }
func (UJ) Format() Format { return FormatUJ }

func (r R) Mnemonic() string  { return r.Op }
func (i I) Mnemonic() string  { return i.Op }
func (s S) Mnemonic() string  { return s.Op }
func (b SB) Mnemonic() string { return b.Op }
func (j UJ) Mnemonic() string { return j.Op }

func (R) instruction()  {}
func (I) instruction()  {}
func (S) instruction()  {}
func (SB) instruction() {}
func (UJ) instruction() {}
