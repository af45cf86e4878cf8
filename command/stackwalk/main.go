package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/lithammer/dedent"
	"go.scnd.dev/open/stackwalk/command/stackwalk/app"
	"go.scnd.dev/open/stackwalk/command/stackwalk/subcommand/config"
	"go.scnd.dev/open/stackwalk/command/stackwalk/subcommand/name"
	"go.scnd.dev/open/stackwalk/command/stackwalk/subcommand/serve"
	"go.scnd.dev/open/stackwalk/command/stackwalk/subcommand/walk"
	"go.uber.org/zap"
)

var description = dedent.Dedent(`
	Stackwalk Command Line Interface

	Inspects the call stack of the running command. Configuration is read from
	--config, STACKWALK_CONFIG_PATH or .local/config.yml, in that order.
`)

type Command struct {
	Verbose    bool            `help:"Enable verbose output." short:"v"`
	ConfigPath string          `help:"Path to configuration file." name:"config" short:"c"`
	Name       *name.Command   `cmd:"" help:"Print the name of a calling function."`
	Walk       *walk.Command   `cmd:"" help:"Print the call stack as a tree."`
	Config     *config.Command `cmd:"" help:"Print the effective configuration."`
	Serve      *serve.Command  `cmd:"" help:"Serve call stack inspection over HTTP."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("stackwalk"),
		kong.Description(description),
		kong.UsageOnError(),
	)
	a := app.New(command.Verbose, command.ConfigPath, os.Stdout)
	defer func() {
		_ = a.Logger.Sync()
	}()

	err := ctx.Run(a)
	if err != nil {
		a.Logger.Error("command failed", zap.Error(err))
	}
	ctx.FatalIfErrorf(err)
}
