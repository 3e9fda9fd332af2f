package cmd

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rvdecode/rvdecode/rvgo/report"
)

const envVarPrefix = "RVDECODE"

func prefixEnvVars(name string) []string {
	return []string{envVarPrefix + "_" + name}
}

func formatNames() string {
	names := make([]string, len(report.Formats))
	for i, f := range report.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

var (
	LogLevelFlag = &cli.StringFlag{
		Name:    "log.level",
		Usage:   "The lowest log level that will be output. One of: trace, debug, info, warn, error, crit",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
		Value:   "info",
	}
	InputFlag = &cli.PathFlag{
		Name:      "input",
		Usage:     "Path of a file with one instruction per line, binary or 0x-prefixed hex. '-' reads stdin",
		EnvVars:   prefixEnvVars("INPUT"),
		TakesFile: true,
	}
	ProgressFlag = &cli.BoolFlag{
		Name:    "progress",
		Usage:   "Show a progress bar while reading --input",
		EnvVars: prefixEnvVars("PROGRESS"),
	}
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Usage:   "Output format. One of: " + formatNames(),
		EnvVars: prefixEnvVars("FORMAT"),
		Value:   string(report.FormatText),
	}
	ColorFlag = &cli.StringFlag{
		Name:    "color",
		Usage:   "Colorize text output. One of: auto, always, never",
		EnvVars: prefixEnvVars("COLOR"),
		Value:   "auto",
	}
	CrossCheckFlag = &cli.BoolFlag{
		Name:    "cross-check",
		Usage:   "Verify every decoded field against the word-arithmetic field parser",
		EnvVars: prefixEnvVars("CROSS_CHECK"),
	}
	PProfCPUFlag = &cli.BoolFlag{
		Name:    "pprof.cpu",
		Usage:   "enable pprof cpu profiling",
		EnvVars: prefixEnvVars("PPROF_CPU"),
	}
	ELFPathFlag = &cli.PathFlag{
		Name:      "path",
		Usage:     "Path to a RISC-V ELF file",
		EnvVars:   prefixEnvVars("ELF_PATH"),
		TakesFile: true,
		Required:  true,
	}
	ListFlag = &cli.BoolFlag{
		Name:  "list",
		Usage: "Only print the sample encodings",
	}
)
