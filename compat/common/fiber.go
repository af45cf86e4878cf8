package common

import (
	"context"

	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/stackwalk/compat/response"
	"go.scnd.dev/open/stackwalk/core"
	"go.uber.org/fx"
)

const DefaultWebListen = ":3000"

type FiberConfig interface {
	GetWebListen() *string
}

func Fiber(lc fx.Lifecycle, config FiberConfig, instance *core.Instance) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:  response.HandleError,
		StrictRouting: true,
	})
	app.Use(instance.Middleware())

	listen := DefaultWebListen
	if config.GetWebListen() != nil {
		listen = *config.GetWebListen()
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				err := app.Listen(listen)
				if err != nil {
					gut.Fatal("unable to listen", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			_ = app.Shutdown()
			return nil
		},
	})

	return app
}
