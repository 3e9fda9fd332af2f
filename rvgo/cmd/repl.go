package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/ethereum/go-ethereum/log"
	"github.com/logrusorgru/aurora/v4"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/rvdecode/rvdecode/rvgo/decode"
	"github.com/rvdecode/rvdecode/rvgo/report"
)

const replHelpMessage = `
Enter an instruction as 32 binary digits (most-significant first)
or as a 0x-prefixed hex word to decode it.
Commands are prefixed with a dot. Valid commands are:

.exit            Exit the decoder
.help            Print this help message
.format <name>   Switch the output format
.samples         Decode the reference instruction of every format

Press ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

var replSuggestions = []prompt.Suggest{
	{Text: ".exit", Description: "Exit the decoder"},
	{Text: ".help", Description: "Print the help message"},
	{Text: ".format", Description: "Switch the output format"},
	{Text: ".samples", Description: "Decode the reference instructions"},
}

// Session evaluates the lines of an interactive decoding session.
type Session struct {
	out    io.Writer
	log    log.Logger
	format report.Format
	style  report.Style
	au     *aurora.Aurora

	line int
	done bool
}

func NewSession(out io.Writer, l log.Logger, format report.Format, style report.Style) *Session {
	return &Session{
		out:    out,
		log:    l,
		format: format,
		style:  style,
		au:     aurora.New(aurora.WithColors(style.Color)),
	}
}

// Done reports whether the session received .exit.
func (s *Session) Done() bool {
	return s.done
}

// Execute evaluates one line: a dot command or an instruction.
func (s *Session) Execute(line string) {
	s.line++
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if strings.HasPrefix(line, ".") {
		s.handleCommand(line)
		return
	}
	s.decode(line)
}

func (s *Session) decode(input string) {
	v, err := ParseInput(input)
	var inst decode.Instruction
	if err == nil {
		inst, err = decode.DecodeBits(v)
	}
	if err != nil {
		s.log.Debug("failed to decode instruction", "input", input, "err", err)
		if s.format == report.FormatText {
			s.printError(err.Error())
			return
		}
	}
	if err := report.NewPrinter(s.out, s.format, s.style).Print(input, inst, err); err != nil {
		s.log.Error("failed to write report", "err", err)
	}
}

func (s *Session) handleCommand(line string) {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch command {
	case ".exit":
		s.done = true
	case ".help":
		fmt.Fprintln(s.out, replHelpMessage)
	case ".format":
		if arg == "" {
			fmt.Fprintf(s.out, "%s (one of: %s)\n", s.format, formatNames())
			return
		}
		format, err := report.ParseFormat(arg)
		if err != nil {
			s.printError(err.Error())
			return
		}
		s.format = format
	case ".samples":
		for _, sample := range Samples {
			s.decode(sample.Bits)
		}
	default:
		s.printError(fmt.Sprintf("Unknown command. %s", replAssistanceMessage))
	}
}

func (s *Session) printError(msg string) {
	fmt.Fprintln(s.out, s.au.Red(msg).Bold())
}

func (s *Session) suggest(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	if !strings.HasPrefix(word, ".") {
		return nil
	}
	return prompt.FilterHasPrefix(replSuggestions, word, false)
}

func (s *Session) livePrefix() (string, bool) {
	return fmt.Sprintf("%d> ", s.line+1), true
}

func REPL(ctx *cli.Context) error {
	l, err := LoggerFromCLI(ctx)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(ctx.String(FormatFlag.Name))
	if err != nil {
		return err
	}
	color, err := colorEnabled(ctx.String(ColorFlag.Name), ctx.App.Writer)
	if err != nil {
		return err
	}
	s := NewSession(ctx.App.Writer, l, format, report.Style{Color: color})

	if f, ok := ctx.App.Reader.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(ctx.App.Writer, "Welcome to rvdecode!\n%s\n\n", replAssistanceMessage)
		prompt.New(s.Execute, s.suggest,
			prompt.OptionLivePrefix(s.livePrefix),
			prompt.OptionSetExitCheckerOnInput(func(string, bool) bool { return s.done }),
		).Run()
		return nil
	}

	// not a terminal: evaluate the piped lines
	scanner := bufio.NewScanner(ctx.App.Reader)
	for !s.done && scanner.Scan() {
		if err := ctx.Context.Err(); err != nil {
			return err
		}
		s.Execute(scanner.Text())
	}
	return scanner.Err()
}

var REPLCommand = &cli.Command{
	Name:   "repl",
	Usage:  "Decode instructions interactively",
	Action: REPL,
	Flags: []cli.Flag{
		FormatFlag,
		ColorFlag,
	},
}
