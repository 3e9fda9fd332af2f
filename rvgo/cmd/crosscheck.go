package cmd

import (
	"fmt"

	"github.com/rvdecode/rvdecode/rvgo/decode"
	"github.com/rvdecode/rvdecode/rvgo/slow"
)

type fieldCheck struct {
	name string
	got  int64
	want int64
}

// CrossCheck compares the fields of a decoded instruction with the fields
// the word-arithmetic parser reads from the same word.
func CrossCheck(inst decode.Instruction, word uint32) error {
	f := slow.ParseWord(word)
	var checks []fieldCheck
	add := func(name string, got, want int64) {
		checks = append(checks, fieldCheck{name: name, got: got, want: want})
	}
	switch inst := inst.(type) {
	case decode.R:
		add("opcode", int64(inst.Opcode), int64(f.Opcode))
		add("rd", int64(inst.Rd), int64(f.Rd))
		add("rs1", int64(inst.Rs1), int64(f.Rs1))
		add("rs2", int64(inst.Rs2), int64(f.Rs2))
		add("funct3", int64(inst.Funct3), int64(f.Funct3))
		add("funct7", int64(inst.Funct7), int64(f.Funct7))
	case decode.I:
		add("opcode", int64(inst.Opcode), int64(f.Opcode))
		add("rd", int64(inst.Rd), int64(f.Rd))
		add("rs1", int64(inst.Rs1), int64(f.Rs1))
		add("funct3", int64(inst.Funct3), int64(f.Funct3))
		if inst.Op == "sltiu" {
			add("imm", int64(inst.Imm), f.ImmSltiu)
		} else {
			add("imm", int64(inst.Imm), f.ImmI)
		}
	case decode.S:
		add("opcode", int64(inst.Opcode), int64(f.Opcode))
		add("rs1", int64(inst.Rs1), int64(f.Rs1))
		add("rs2", int64(inst.Rs2), int64(f.Rs2))
		add("funct3", int64(inst.Funct3), int64(f.Funct3))
		add("imm", int64(inst.Imm), f.ImmS)
	case decode.SB:
		add("opcode", int64(inst.Opcode), int64(f.Opcode))
		add("rs1", int64(inst.Rs1), int64(f.Rs1))
		add("rs2", int64(inst.Rs2), int64(f.Rs2))
		add("funct3", int64(inst.Funct3), int64(f.Funct3))
		add("imm", int64(inst.Imm), f.ImmSB)
	case decode.UJ:
		add("opcode", int64(inst.Opcode), int64(f.Opcode))
		add("rd", int64(inst.Rd), int64(f.Rd))
		add("imm", int64(inst.Imm), f.ImmUJ)
	default:
		return fmt.Errorf("unknown instruction variant %T", inst)
	}
	for _, c := range checks {
		if c.got != c.want {
			return fmt.Errorf("field %s of %s mismatch: decoded %d, word parser %d", c.name, inst.Mnemonic(), c.got, c.want)
		}
	}
	return nil
}
