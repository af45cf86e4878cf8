package name

import (
	"context"
	"fmt"

	"go.scnd.dev/open/stackwalk/command/stackwalk/app"
	"go.scnd.dev/open/stackwalk/core"
	"go.scnd.dev/open/stackwalk/package/span"
	"go.scnd.dev/open/stackwalk/package/walker"
	"go.uber.org/zap"
)

type Command struct {
	Skip   int    `help:"Frames to skip above the command." default:"0"`
	Prefix string `help:"Only accept function names with this prefix."`
	Naming string `help:"Name rendering (short, package, full)."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	ctx := context.Background()

	// * load config
	config, err := app.Config()
	if err != nil {
		return err
	}
	if command.Naming != "" {
		config.Naming = &command.Naming
	}

	// * construct instance
	instance, err := core.New(config)
	if err != nil {
		return err
	}
	defer func() {
		_ = instance.Shutdown(ctx)
	}()

	// * inspect
	var predicate walker.Predicate
	if command.Prefix != "" {
		predicate = walker.HasPrefix(command.Prefix)
	}
	name, ok := instance.FunctionName(ctx, command.Skip, predicate)
	if !ok {
		return span.NewWalkerError(instance.Walker(), "no matching frame", nil)
	}
	app.Logger.Debug("found frame", zap.Int("skip", command.Skip), zap.String("name", name))

	_, err = fmt.Fprintln(app.Output, name)
	return err
}
