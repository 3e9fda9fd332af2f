package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rvdecode/rvdecode/rvgo/report"
)

func TestSession(t *testing.T) {
	var out, logs bytes.Buffer
	s := NewSession(&out, Logger(&logs, 0), report.FormatText, report.Style{})

	s.Execute("0x00a000ef")
	require.Equal(t, jalReport, out.String())
	require.False(t, s.Done())

	out.Reset()
	s.Execute("   ")
	require.Empty(t, out.String())

	s.Execute("0x0000")
	require.Contains(t, out.String(), "expected 4 bytes")

	out.Reset()
	s.Execute(".help")
	require.Contains(t, out.String(), ".format <name>")

	out.Reset()
	s.Execute(".format")
	require.Equal(t, "text (one of: text, json, yaml, cbor, dump)\n", out.String())

	out.Reset()
	s.Execute(".format toml")
	require.Contains(t, out.String(), "unknown output format")

	out.Reset()
	s.Execute(".format json")
	s.Execute("0x402081b3")
	require.Contains(t, out.String(), `"mnemonic":"sub"`)

	out.Reset()
	s.Execute(".samples")
	require.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), len(Samples))

	out.Reset()
	s.Execute(".nope")
	require.Contains(t, out.String(), "Unknown command. Type '.help' for assistance.")

	s.Execute(".exit")
	require.True(t, s.Done())

	prefix, ok := s.livePrefix()
	require.True(t, ok)
	require.Equal(t, "12> ", prefix)
}

func TestREPLCommand(t *testing.T) {
	stdin := strings.Join([]string{
		"0x402081b3",
		".format json",
		"0x00a000ef",
		".exit",
		"0x00a000ef",
	}, "\n")
	stdout, _, err := runApp(t, stdin, "repl")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, subReport))
	require.Equal(t, 1, strings.Count(stdout, `"mnemonic":"jal"`))
}
