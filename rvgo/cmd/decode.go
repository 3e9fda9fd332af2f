package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/rvdecode/rvdecode/rvgo/decode"
	"github.com/rvdecode/rvdecode/rvgo/report"
)

// decodeRun decodes a stream of inputs, reporting each result and counting failures.
type decodeRun struct {
	log        log.Logger
	printer    *report.Printer
	crossCheck bool

	total  int
	failed int
}

func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid color mode %q", mode)
	}
}

func newDecodeRun(ctx *cli.Context) (*decodeRun, error) {
	l, err := LoggerFromCLI(ctx)
	if err != nil {
		return nil, err
	}
	format, err := report.ParseFormat(ctx.String(FormatFlag.Name))
	if err != nil {
		return nil, err
	}
	color, err := colorEnabled(ctx.String(ColorFlag.Name), ctx.App.Writer)
	if err != nil {
		return nil, err
	}
	return &decodeRun{
		log:        l,
		printer:    report.NewPrinter(ctx.App.Writer, format, report.Style{Color: color}),
		crossCheck: ctx.Bool(CrossCheckFlag.Name),
	}, nil
}

// handle decodes one input. Decode failures are logged and counted,
// only a failure to write the report is returned.
func (r *decodeRun) handle(input string) error {
	r.total++
	v, err := ParseInput(input)
	var inst decode.Instruction
	if err == nil {
		inst, err = decode.DecodeBits(v)
	}
	if err == nil && r.crossCheck {
		if err = CrossCheck(inst, v.Word()); err != nil {
			inst = nil
		}
	}
	if err != nil {
		r.failed++
		r.log.Error("failed to decode instruction", "input", input, "err", err)
	} else {
		r.log.Debug("decoded instruction", "word", HexU32(v.Word()), "format", inst.Format(), "op", inst.Mnemonic())
	}
	if err := r.printer.Print(input, inst, err); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (r *decodeRun) handleLines(ctx *cli.Context, src io.Reader) error {
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		if err := ctx.Context.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		if skipLine(line) {
			continue
		}
		if err := r.handle(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (r *decodeRun) handleFile(ctx *cli.Context, path string) error {
	if path == "-" {
		return r.handleLines(ctx, ctx.App.Reader)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input %q: %w", path, err)
	}
	defer f.Close()

	if !ctx.Bool(ProgressFlag.Name) {
		return r.handleLines(ctx, f)
	}
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat input %q: %w", path, err)
	}
	bar := progressbar.NewOptions64(info.Size(),
		progressbar.OptionSetWriter(ctx.App.ErrWriter),
		progressbar.OptionSetDescription("decoding"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
	pr := progressbar.NewReader(f, bar)
	if err := r.handleLines(ctx, &pr); err != nil {
		return err
	}
	return bar.Finish()
}

func (r *decodeRun) result() error {
	if r.failed > 0 {
		return fmt.Errorf("%d of %d instructions failed to decode", r.failed, r.total)
	}
	return nil
}

func Decode(ctx *cli.Context) error {
	if ctx.Bool(PProfCPUFlag.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}
	run, err := newDecodeRun(ctx)
	if err != nil {
		return err
	}
	for _, arg := range ctx.Args().Slice() {
		if err := ctx.Context.Err(); err != nil {
			return err
		}
		if err := run.handle(arg); err != nil {
			return err
		}
	}
	if path := ctx.Path(InputFlag.Name); path != "" {
		if err := run.handleFile(ctx, path); err != nil {
			return err
		}
	}
	if run.total == 0 {
		return errors.New("no instructions given, pass them as arguments or with --input")
	}
	return run.result()
}

var DecodeCommand = &cli.Command{
	Name:        "decode",
	Usage:       "Decode RV32I instruction words",
	Description: "Decode instructions given as 32 binary digits (most-significant first) or as 0x-prefixed hex words",
	ArgsUsage:   "<instruction>...",
	Action:      Decode,
	Flags: []cli.Flag{
		InputFlag,
		ProgressFlag,
		FormatFlag,
		ColorFlag,
		CrossCheckFlag,
		PProfCPUFlag,
	},
}
