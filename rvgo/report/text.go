package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora/v4"

	"github.com/rvdecode/rvdecode/rvgo/decode"
)

// Style controls the decoration of text reports.
type Style struct {
	Color bool
}

// Text writes the line-oriented report of inst:
// format tag, mnemonic, registers as x<N>, selectors and the immediate.
func Text(w io.Writer, inst decode.Instruction, style Style) error {
	au := aurora.New(aurora.WithColors(style.Color))
	var sb strings.Builder
	line := func(label string, value any) {
		fmt.Fprintf(&sb, "%s: %v\n", label, value)
	}
	reg := func(label string, r uint8) {
		line(label, au.Yellow(fmt.Sprintf("x%d", r)))
	}

	line("Instruction Type", au.Bold(inst.Format().String()))
	line("Operation", au.Cyan(inst.Mnemonic()))

	switch inst := inst.(type) {
	case decode.R:
		reg("Rs1", inst.Rs1)
		reg("Rs2", inst.Rs2)
		reg("Rd", inst.Rd)
		line("Func3", inst.Funct3)
		line("Func7", inst.Funct7)
	case decode.I:
		reg("Rs1", inst.Rs1)
		reg("Rd", inst.Rd)
		line("imm", au.Green(FormatImm(inst.Imm)))
	case decode.S:
		reg("Rs1", inst.Rs1)
		reg("Rs2", inst.Rs2)
		line("imm", au.Green(FormatImm(inst.Imm)))
	case decode.SB:
		reg("Rs1", inst.Rs1)
		reg("Rs2", inst.Rs2)
		line("imm", au.Green(FormatImm(inst.Imm)))
	case decode.UJ:
		reg("Rd", inst.Rd)
		line("imm", au.Green(FormatImm(inst.Imm)))
	default:
		panic(fmt.Errorf("unknown instruction variant %T", inst))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatImm renders an immediate in decimal, adding the hex form of its
// 32-bit pattern when the value has more than one decimal digit.
func FormatImm(imm int32) string {
	if imm >= 10 || imm <= -10 {
		return fmt.Sprintf("%d (or 0x%x)", imm, uint32(imm))
	}
	return fmt.Sprintf("%d", imm)
}

// Summary renders inst as a single assembly-like line, e.g. "sb x3, -16(x4)".
func Summary(inst decode.Instruction) string {
	switch inst := inst.(type) {
	case decode.R:
		return fmt.Sprintf("%s x%d, x%d, x%d", inst.Op, inst.Rd, inst.Rs1, inst.Rs2)
	case decode.I:
		if inst.Op == "lb" || inst.Op == "lh" || inst.Op == "lw" || inst.Op == "jalr" {
			return fmt.Sprintf("%s x%d, %d(x%d)", inst.Op, inst.Rd, inst.Imm, inst.Rs1)
		}
		return fmt.Sprintf("%s x%d, x%d, %d", inst.Op, inst.Rd, inst.Rs1, inst.Imm)
	case decode.S:
		return fmt.Sprintf("%s x%d, %d(x%d)", inst.Op, inst.Rs2, inst.Imm, inst.Rs1)
	case decode.SB:
		return fmt.Sprintf("%s x%d, x%d, %d", inst.Op, inst.Rs1, inst.Rs2, inst.Imm)
	case decode.UJ:
		return fmt.Sprintf("%s x%d, %d", inst.Op, inst.Rd, inst.Imm)
	default:
		panic(fmt.Errorf("unknown instruction variant %T", inst))
	}
}
