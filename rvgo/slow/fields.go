package slow

// Fields holds every field of an instruction word, under each format interpretation.
type Fields struct {
	Opcode    uint8
	Rd        uint8
	Funct3    uint8
	Rs1       uint8
	Rs2       uint8
	Funct7    uint8
	ShiftType uint8

	ImmI     int64
	ImmSltiu int64
	ImmS     int64
	ImmSB    int64
	ImmUJ    int64
}

// ParseWord parses all fields of w at once.
func ParseWord(w uint32) Fields {
	instr := Word(w)
	return Fields{
		Opcode:    uint8(Val(parseOpcode(instr))),
		Rd:        uint8(Val(parseRd(instr))),
		Funct3:    uint8(Val(parseFunct3(instr))),
		Rs1:       uint8(Val(parseRs1(instr))),
		Rs2:       uint8(Val(parseRs2(instr))),
		Funct7:    uint8(Val(parseFunct7(instr))),
		ShiftType: uint8(Val(parseShiftType(instr))),
		ImmI:      Signed(parseImmTypeI(instr)),
		ImmSltiu:  Signed(parseImmSltiu(instr)),
		ImmS:      Signed(parseImmTypeS(instr)),
		ImmSB:     Signed(parseImmTypeSB(instr)),
		ImmUJ:     Signed(parseImmTypeUJ(instr)),
	}
}

// IsCompressed reports whether the low parcel of w is a 16-bit compressed instruction.
// In the 32-bit instructions, the lowest-order 2 bits are always set.
func IsCompressed(w uint32) bool {
	return and64(Word(w), toU64(3)) != toU64(3)
}
