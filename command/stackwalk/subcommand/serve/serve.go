package serve

import (
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/stackwalk"
	"go.scnd.dev/open/stackwalk/command/stackwalk/app"
	"go.scnd.dev/open/stackwalk/compat/common"
	"go.scnd.dev/open/stackwalk/core"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

type Command struct {
	Listen string `help:"Listen address, overrides webListen."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	config, err := app.Config()
	if err != nil {
		return err
	}
	if command.Listen != "" {
		config.WebListen = &command.Listen
	}

	fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: app.Logger}
		}),
		fx.Supply(config),
		fx.Supply(app.Logger),
		common.Module,
		fx.Provide(NewHandler),
		fx.Invoke(Register),
	).Run()

	return nil
}

func Register(fiberApp *fiber.App, handler *Handler, logger *zap.Logger, config *stackwalk.Config) {
	fiberApp.Get("/name", handler.HandleName)
	fiberApp.Get("/walk", handler.HandleWalk)

	listen := common.DefaultWebListen
	if config.GetWebListen() != nil {
		listen = *config.GetWebListen()
	}
	logger.Info("serving call stack inspection", zap.String("listen", listen))
}

func NewHandler(instance *core.Instance) *Handler {
	return &Handler{
		Instance: instance,
	}
}
