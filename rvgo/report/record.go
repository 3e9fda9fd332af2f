package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"

	"github.com/rvdecode/rvdecode/rvgo/decode"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
	FormatDump Format = "dump"
)

var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatCBOR, FormatDump}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q, expected one of %v", s, Formats)
}

// Record is the flat, encoder-friendly form of one decode result.
// Fields that do not belong to the instruction's format are nil.
type Record struct {
	Input    string `json:"input" yaml:"input"`
	Format   string `json:"format,omitempty" yaml:"format,omitempty"`
	Mnemonic string `json:"mnemonic,omitempty" yaml:"mnemonic,omitempty"`
	Opcode   *uint8 `json:"opcode,omitempty" yaml:"opcode,omitempty"`
	Rd       *uint8 `json:"rd,omitempty" yaml:"rd,omitempty"`
	Rs1      *uint8 `json:"rs1,omitempty" yaml:"rs1,omitempty"`
	Rs2      *uint8 `json:"rs2,omitempty" yaml:"rs2,omitempty"`
	Funct3   *uint8 `json:"funct3,omitempty" yaml:"funct3,omitempty"`
	Funct7   *uint8 `json:"funct7,omitempty" yaml:"funct7,omitempty"`
	Imm      *int32 `json:"imm,omitempty" yaml:"imm,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}

// NewRecord flattens a decode result. A non-nil err takes precedence over inst.
func NewRecord(input string, inst decode.Instruction, err error) Record {
	out := Record{Input: input}
	if err != nil {
		out.Error = err.Error()
		return out
	}
	out.Format = inst.Format().String()
	out.Mnemonic = inst.Mnemonic()
	switch inst := inst.(type) {
	case decode.R:
		out.Opcode, out.Rd, out.Rs1, out.Rs2 = ptr(inst.Opcode), ptr(inst.Rd), ptr(inst.Rs1), ptr(inst.Rs2)
		out.Funct3, out.Funct7 = ptr(inst.Funct3), ptr(inst.Funct7)
	case decode.I:
		out.Opcode, out.Rd, out.Rs1 = ptr(inst.Opcode), ptr(inst.Rd), ptr(inst.Rs1)
		out.Funct3, out.Imm = ptr(inst.Funct3), ptr(inst.Imm)
	case decode.S:
		out.Opcode, out.Rs1, out.Rs2 = ptr(inst.Opcode), ptr(inst.Rs1), ptr(inst.Rs2)
		out.Funct3, out.Imm = ptr(inst.Funct3), ptr(inst.Imm)
	case decode.SB:
		out.Opcode, out.Rs1, out.Rs2 = ptr(inst.Opcode), ptr(inst.Rs1), ptr(inst.Rs2)
		out.Funct3, out.Imm = ptr(inst.Funct3), ptr(inst.Imm)
	case decode.UJ:
		out.Opcode, out.Rd, out.Imm = ptr(inst.Opcode), ptr(inst.Rd), ptr(inst.Imm)
	default:
		panic(fmt.Errorf("unknown instruction variant %T", inst))
	}
	return out
}

// Printer writes decode results to w in one output format.
type Printer struct {
	w      io.Writer
	format Format
	style  Style
	count  int
}

func NewPrinter(w io.Writer, format Format, style Style) *Printer {
	return &Printer{w: w, format: format, style: style}
}

// Print writes one decode result. In text format failed decodes write nothing,
// the caller reports them; structured formats carry the error in the record.
func (p *Printer) Print(input string, inst decode.Instruction, err error) error {
	if p.format == FormatText {
		if err != nil {
			return nil
		}
		if p.count > 0 {
			if _, err := io.WriteString(p.w, "\n"); err != nil {
				return err
			}
		}
		p.count++
		return Text(p.w, inst, p.style)
	}
	p.count++
	return p.encode(NewRecord(input, inst, err))
}

func (p *Printer) encode(rec Record) error {
	switch p.format {
	case FormatJSON:
		return json.NewEncoder(p.w).Encode(rec)
	case FormatYAML:
		data, err := yaml.Marshal([]Record{rec})
		if err != nil {
			return fmt.Errorf("failed to encode yaml record: %w", err)
		}
		_, err = p.w.Write(data)
		return err
	case FormatCBOR:
		data, err := cbor.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode cbor record: %w", err)
		}
		_, err = fmt.Fprintln(p.w, hexutil.Encode(data))
		return err
	case FormatDump:
		spew.Fdump(p.w, rec)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", p.format)
	}
}
