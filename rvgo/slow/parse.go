package slow

// Functions to parse the instruction field values from an instruction word, with mask and shift.
// These must 1:1 match the bit-vector field layouts of the decode package.

func parseOpcode(instr U64) U64 {
	return and64(instr, toU64(0x7F))
}

func parseRd(instr U64) U64 {
	return and64(shr64(toU64(7), instr), toU64(0x1F))
}

func parseFunct3(instr U64) U64 {
	return and64(shr64(toU64(12), instr), toU64(0x7))
}

func parseRs1(instr U64) U64 {
	return and64(shr64(toU64(15), instr), toU64(0x1F))
}

func parseRs2(instr U64) U64 {
	return and64(shr64(toU64(20), instr), toU64(0x1F))
}

func parseFunct7(instr U64) U64 {
	return and64(shr64(toU64(25), instr), toU64(0x7F))
}

func parseShiftType(instr U64) U64 {
	return and64(shr64(toU64(30), instr), toU64(1))
}

func parseImmTypeI(instr U64) U64 {
	return signExtend64(and64(shr64(toU64(20), instr), shortToU64(0xFFF)), toU64(11))
}

// sltiu reads 11 bits, without the sign bit
func parseImmSltiu(instr U64) U64 {
	return and64(shr64(toU64(20), instr), shortToU64(0x7FF))
}

func parseImmTypeS(instr U64) U64 {
	return signExtend64(
		or64(
			shl64(toU64(5), and64(shr64(toU64(25), instr), toU64(0x7F))),
			and64(shr64(toU64(7), instr), toU64(0x1F)),
		),
		toU64(11),
	)
}

// offset in bytes: bit 0 is always zero
func parseImmTypeSB(instr U64) U64 {
	return signExtend64(
		or64(
			or64(
				shl64(toU64(1), and64(shr64(toU64(8), instr), toU64(0xF))),
				shl64(toU64(5), and64(shr64(toU64(25), instr), toU64(0x3F))),
			),
			or64(
				shl64(toU64(11), and64(shr64(toU64(7), instr), toU64(1))),
				shl64(toU64(12), and64(shr64(toU64(31), instr), toU64(1))),
			),
		),
		toU64(12),
	)
}

// offset in bytes: bit 0 is always zero, and bit 31 is not sign-extended
func parseImmTypeUJ(instr U64) U64 {
	return or64(
		or64(
			shl64(toU64(1), and64(shr64(toU64(21), instr), shortToU64(0x3FF))),
			shl64(toU64(11), and64(shr64(toU64(20), instr), toU64(1))),
		),
		or64(
			shl64(toU64(12), and64(shr64(toU64(12), instr), toU64(0xFF))),
			shl64(toU64(20), and64(shr64(toU64(31), instr), toU64(1))),
		),
	)
}
