package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// Sample is a reference encoding of one instruction per format.
type Sample struct {
	Format string
	Bits   string
	Asm    string
}

var Samples = []Sample{
	{Format: "R", Bits: "01000000001000001000000110110011", Asm: "sub x3, x1, x2"},
	{Format: "I", Bits: "00000000101001100111011010010011", Asm: "andi x13, x12, 10"},
	{Format: "S", Bits: "11111110001100100000100000100011", Asm: "sb x3, -16(x4)"},
	{Format: "SB", Bits: "11111110001000001001111011100011", Asm: "bne x1, x2, -4"},
	{Format: "UJ", Bits: "00000000101000000000000011101111", Asm: "jal x1, 10"},
}

func RunSamples(ctx *cli.Context) error {
	if ctx.Bool(ListFlag.Name) {
		for _, s := range Samples {
			if _, err := fmt.Fprintf(ctx.App.Writer, "%-2s %s  %s\n", s.Format, s.Bits, s.Asm); err != nil {
				return err
			}
		}
		return nil
	}
	run, err := newDecodeRun(ctx)
	if err != nil {
		return err
	}
	for _, s := range Samples {
		if err := run.handle(s.Bits); err != nil {
			return err
		}
	}
	return run.result()
}

var SamplesCommand = &cli.Command{
	Name:   "samples",
	Usage:  "Decode one reference instruction of every format",
	Action: RunSamples,
	Flags: []cli.Flag{
		ListFlag,
		FormatFlag,
		ColorFlag,
		CrossCheckFlag,
	},
}
