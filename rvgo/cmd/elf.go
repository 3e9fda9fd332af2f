package cmd

import (
	"debug/elf"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/rvdecode/rvdecode/rvgo/decode"
	"github.com/rvdecode/rvdecode/rvgo/report"
	"github.com/rvdecode/rvdecode/rvgo/slow"
)

type SortedSymbols []elf.Symbol

// FindSymbol finds the symbol that intersects with the given addr, or nil if none exists
func (s SortedSymbols) FindSymbol(addr uint64) elf.Symbol {
	// find first symbol with higher start. Or n if no such symbol exists
	i := sort.Search(len(s), func(i int) bool {
		return s[i].Value > addr
	})
	if i == 0 {
		return elf.Symbol{Name: "!start", Value: 0}
	}
	out := &s[i-1]
	if out.Value+out.Size < addr { // addr may be pointing to a gap between symbols
		return elf.Symbol{Name: "!gap", Value: addr}
	}
	return *out
}

// Symbols returns the function symbols of f by address. A stripped ELF has none.
func Symbols(f *elf.File) (SortedSymbols, error) {
	symbols, err := f.Symbols()
	if errors.Is(err, elf.ErrNoSymbols) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read symbols data: %w", err)
	}
	var out SortedSymbols
	for _, s := range symbols {
		if elf.ST_TYPE(s.Info) == elf.STT_FUNC {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})
	return out, nil
}

// Parcel is one entry of an instruction stream: a 32-bit word,
// or a 16-bit compressed parcel that is not decoded.
type Parcel struct {
	Addr       uint64
	Word       uint32
	Compressed bool
	Inst       decode.Instruction
	Err        error
}

// WalkText decodes the instruction stream in data, loaded at base.
func WalkText(data []byte, base uint64, order binary.ByteOrder, fn func(Parcel) error) error {
	for off := 0; off+2 <= len(data); {
		addr := base + uint64(off)
		low := order.Uint16(data[off:])
		if slow.IsCompressed(uint32(low)) {
			if err := fn(Parcel{Addr: addr, Word: uint32(low), Compressed: true}); err != nil {
				return err
			}
			off += 2
			continue
		}
		if off+4 > len(data) {
			return fmt.Errorf("truncated instruction at %#x", addr)
		}
		w := order.Uint32(data[off:])
		inst, err := decode.DecodeWord(w)
		if err := fn(Parcel{Addr: addr, Word: w, Inst: inst, Err: err}); err != nil {
			return err
		}
		off += 4
	}
	return nil
}

func writeParcel(w io.Writer, p Parcel) error {
	var err error
	switch {
	case p.Compressed:
		_, err = fmt.Fprintf(w, "%8x:\t%04x    \t(compressed)\n", p.Addr, p.Word)
	case p.Err != nil:
		_, err = fmt.Fprintf(w, "%8x:\t%08x\t<%v>\n", p.Addr, p.Word, p.Err)
	default:
		_, err = fmt.Fprintf(w, "%8x:\t%08x\t%s\n", p.Addr, p.Word, report.Summary(p.Inst))
	}
	return err
}

func DecodeELF(ctx *cli.Context) error {
	l, err := LoggerFromCLI(ctx)
	if err != nil {
		return err
	}
	elfPath := ctx.Path(ELFPathFlag.Name)
	elfProgram, err := elf.Open(elfPath)
	if err != nil {
		return fmt.Errorf("failed to open ELF file %q: %w", elfPath, err)
	}
	defer elfProgram.Close()
	if elfProgram.Machine != elf.EM_RISCV {
		return fmt.Errorf("ELF is not RISC-V, but got %q", elfProgram.Machine.String())
	}
	symbols, err := Symbols(elfProgram)
	if err != nil {
		return err
	}

	out := ctx.App.Writer
	var decoded, unsupported, compressed int
	for _, sec := range elfProgram.Sections {
		if sec.Type != elf.SHT_PROGBITS || sec.Flags&elf.SHF_EXECINSTR == 0 {
			continue
		}
		data, err := sec.Data()
		if err != nil {
			return fmt.Errorf("failed to read section %s: %w", sec.Name, err)
		}
		l.Debug("decoding section", "name", sec.Name, "addr", hexutil.Uint64(sec.Addr), "size", sec.Size)
		if _, err := fmt.Fprintf(out, "\nsection %s:\n", sec.Name); err != nil {
			return err
		}
		err = WalkText(data, sec.Addr, elfProgram.ByteOrder, func(p Parcel) error {
			if err := ctx.Context.Err(); err != nil {
				return err
			}
			if sym := symbols.FindSymbol(p.Addr); sym.Value == p.Addr && sym.Name != "!gap" && sym.Name != "!start" {
				if _, err := fmt.Fprintf(out, "%08x <%s>:\n", p.Addr, sym.Name); err != nil {
					return err
				}
			}
			switch {
			case p.Compressed:
				compressed++
			case p.Err != nil:
				unsupported++
			default:
				decoded++
			}
			return writeParcel(out, p)
		})
		if err != nil {
			return fmt.Errorf("failed to decode section %s: %w", sec.Name, err)
		}
	}
	l.Info("decoded ELF", "path", elfPath, "decoded", decoded, "undecodable", unsupported, "compressed", compressed)
	return nil
}

var DecodeELFCommand = &cli.Command{
	Name:        "decode-elf",
	Usage:       "List the decoded instructions of a RISC-V ELF file",
	Description: "Walk the executable sections of a RISC-V ELF file and decode every 32-bit instruction, skipping compressed parcels",
	Action:      DecodeELF,
	Flags: []cli.Flag{
		ELFPathFlag,
	},
}
