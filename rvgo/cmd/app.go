package cmd

import "github.com/urfave/cli/v2"

func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rvdecode"
	app.Usage = "RISC-V instruction decoder"
	app.Description = "Decode RV32I base instruction words into their format, mnemonic and fields"
	app.Flags = []cli.Flag{
		LogLevelFlag,
	}
	app.Commands = []*cli.Command{
		DecodeCommand,
		SamplesCommand,
		REPLCommand,
		DecodeELFCommand,
	}
	return app
}
