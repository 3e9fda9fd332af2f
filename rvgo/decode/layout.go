package decode

import "github.com/rvdecode/rvdecode/rvgo/bitvec"

// Field layouts, as indices into the lsb-first instruction vector.
// Immediate layouts list bits from the least to the most significant bit of the assembled value.
var (
	opcodeField = bitvec.Span(0, 6)
	rdField     = bitvec.Span(7, 11)
	funct3Field = bitvec.Span(12, 14)
	rs1Field    = bitvec.Span(15, 19)
	rs2Field    = bitvec.Span(20, 24)
	funct7Field = bitvec.Span(25, 31)

	immIField     = bitvec.Span(20, 31)
	immSltiuField = bitvec.Span(20, 30) // 11 bits, read unsigned
	immSField     = bitvec.Join(bitvec.Span(7, 11), bitvec.Span(25, 31))
	immSBField    = bitvec.FieldSpec{8, 9, 10, 11, 25, 26, 27, 28, 29, 30, 7, 31}
	immUJField    = bitvec.FieldSpec{21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 20, 12, 13, 14, 15, 16, 17, 18, 19, 31}
)
