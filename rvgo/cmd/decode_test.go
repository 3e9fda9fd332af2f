package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const subReport = "Instruction Type: R\nOperation: sub\nRs1: x1\nRs2: x2\nRd: x3\nFunc3: 0\nFunc7: 32\n"

const jalReport = "Instruction Type: UJ\nOperation: jal\nRd: x1\nimm: 10 (or 0xa)\n"

func TestDecodeCommand(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		stdout, _, err := runApp(t, "", "decode", "01000000001000001000000110110011")
		require.NoError(t, err)
		require.Equal(t, subReport, stdout)
	})

	t.Run("SeparatesReports", func(t *testing.T) {
		stdout, _, err := runApp(t, "", "decode", "0x402081b3", "00000000101000000000000011101111")
		require.NoError(t, err)
		require.Equal(t, subReport+"\n"+jalReport, stdout)
	})

	t.Run("JSON", func(t *testing.T) {
		stdout, _, err := runApp(t, "", "decode", "--format", "json", "0x402081b3", "0x00a000ef")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 2)
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
		require.Equal(t, "0x00a000ef", rec["input"])
		require.Equal(t, "jal", rec["mnemonic"])
		require.EqualValues(t, 10, rec["imm"])
	})

	t.Run("FailuresAreCounted", func(t *testing.T) {
		stdout, stderr, err := runApp(t, "", "decode", "0x402081b3", "00000000000000000000000000000011")
		require.ErrorContains(t, err, "1 of 2 instructions failed to decode")
		require.Equal(t, subReport, stdout)
		require.Contains(t, stderr, "failed to decode instruction")
		require.Contains(t, stderr, "unsupported opcode: 3")
	})

	t.Run("FailuresInJSON", func(t *testing.T) {
		stdout, _, err := runApp(t, "", "decode", "--format", "json", "0101")
		require.Error(t, err)
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(stdout), &rec))
		require.Equal(t, "0101", rec["input"])
		require.Contains(t, rec["error"], "expected 32 binary digits, got 4 characters")
	})

	t.Run("NoInput", func(t *testing.T) {
		_, _, err := runApp(t, "", "decode")
		require.ErrorContains(t, err, "no instructions given")
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		_, _, err := runApp(t, "", "decode", "--format", "xml", "0x402081b3")
		require.ErrorContains(t, err, "unknown output format")
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		_, _, err := runApp(t, "", "--log.level", "loud", "decode", "0x402081b3")
		require.ErrorContains(t, err, "invalid log level")
	})

	t.Run("DebugLog", func(t *testing.T) {
		_, stderr, err := runApp(t, "", "--log.level", "debug", "decode", "0x402081b3")
		require.NoError(t, err)
		require.Contains(t, stderr, "decoded instruction")
		require.Contains(t, stderr, "402081b3")
	})

	t.Run("CrossCheck", func(t *testing.T) {
		stdout, _, err := runApp(t, "", "decode", "--cross-check", "0x402081b3", "0xfff03093")
		require.NoError(t, err)
		require.Contains(t, stdout, "Operation: sltiu")
		require.Contains(t, stdout, "imm: 2047 (or 0x7ff)")
	})
}

func TestDecodeInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := strings.Join([]string{
		"# reference words",
		"0x402081b3",
		"",
		"00000000101000000000000011101111",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Run("File", func(t *testing.T) {
		stdout, _, err := runApp(t, "", "decode", "--input", path)
		require.NoError(t, err)
		require.Equal(t, subReport+"\n"+jalReport, stdout)
	})

	t.Run("Progress", func(t *testing.T) {
		stdout, _, err := runApp(t, "", "decode", "--progress", "--input", path)
		require.NoError(t, err)
		require.Equal(t, subReport+"\n"+jalReport, stdout)
	})

	t.Run("ArgsThenFile", func(t *testing.T) {
		stdout, _, err := runApp(t, "", "decode", "--format", "json", "--input", path, "0x00a000ef")
		require.NoError(t, err)
		require.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 3)
	})

	t.Run("Stdin", func(t *testing.T) {
		stdout, _, err := runApp(t, content, "decode", "--input", "-")
		require.NoError(t, err)
		require.Equal(t, subReport+"\n"+jalReport, stdout)
	})

	t.Run("Missing", func(t *testing.T) {
		_, _, err := runApp(t, "", "decode", "--input", filepath.Join(t.TempDir(), "none.txt"))
		require.ErrorContains(t, err, "failed to open input")
	})
}

func TestSamplesCommand(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		stdout, _, err := runApp(t, "", "samples", "--list")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, len(Samples))
		require.Equal(t, "SB 11111110001000001001111011100011  bne x1, x2, -4", lines[3])
	})

	t.Run("Decode", func(t *testing.T) {
		stdout, _, err := runApp(t, "", "samples", "--cross-check")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(stdout, subReport))
		require.True(t, strings.HasSuffix(stdout, jalReport))
		for _, op := range []string{"sub", "andi", "sb", "bne", "jal"} {
			require.Contains(t, stdout, "Operation: "+op+"\n")
		}
	})

	t.Run("YAML", func(t *testing.T) {
		stdout, _, err := runApp(t, "", "samples", "--format", "yaml")
		require.NoError(t, err)
		require.Equal(t, len(Samples), strings.Count(stdout, "- input:"))
	})
}
