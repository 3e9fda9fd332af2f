package cmd

import (
	"fmt"
	"io"

	"log/slog"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

func Logger(w io.Writer, lvl slog.Level) log.Logger {
	return log.NewLogger(log.LogfmtHandlerWithLevel(w, lvl))
}

// LoggerFromCLI builds the logger of a command from the --log.level flag,
// writing to the error writer of the app.
func LoggerFromCLI(ctx *cli.Context) (log.Logger, error) {
	lvl, err := log.LvlFromString(ctx.String(LogLevelFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return Logger(ctx.App.ErrWriter, lvl), nil
}

// HexU32 to lazy-format integer attributes for logging
type HexU32 uint32

func (v HexU32) String() string {
	return fmt.Sprintf("%08x", uint32(v))
}

func (v HexU32) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
