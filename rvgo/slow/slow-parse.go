package slow

func ParseOpcode(instr U64) U64 {
	return parseOpcode(instr)
}

func ParseRd(instr U64) U64 {
	return parseRd(instr)
}

func ParseFunct3(instr U64) U64 {
	return parseFunct3(instr)
}

func ParseRs1(instr U64) U64 {
	return parseRs1(instr)
}

func ParseRs2(instr U64) U64 {
	return parseRs2(instr)
}

func ParseFunct7(instr U64) U64 {
	return parseFunct7(instr)
}

func ParseShiftType(instr U64) U64 {
	return parseShiftType(instr)
}

func ParseImmTypeI(instr U64) U64 {
	return parseImmTypeI(instr)
}

func ParseImmSltiu(instr U64) U64 {
	return parseImmSltiu(instr)
}

func ParseImmTypeS(instr U64) U64 {
	return parseImmTypeS(instr)
}

func ParseImmTypeSB(instr U64) U64 {
	return parseImmTypeSB(instr)
}

func ParseImmTypeUJ(instr U64) U64 {
	return parseImmTypeUJ(instr)
}

// Word lifts a 32-bit instruction word into a U64.
func Word(w uint32) U64 {
	return wordToU64(w)
}

// Val returns the plain uint64 held by v.
func Val(v U64) uint64 {
	return v.val()
}

// Signed reinterprets v as a two's-complement 64-bit integer.
func Signed(v U64) int64 {
	return int64(v.val())
}
