package core

import (
	"context"

	"go.scnd.dev/open/stackwalk"
	"go.uber.org/fx"
)

var Module = fx.Module(
	"stackwalk",
	fx.Provide(
		func(config *stackwalk.Config) (*Instance, error) {
			return New(config)
		},
		func(instance *Instance) stackwalk.Provider {
			return instance
		},
		func(instance *Instance) stackwalk.Walker {
			return instance.Walker()
		},
	),
	fx.Invoke(Lifecycle),
)

func Lifecycle(lc fx.Lifecycle, instance *Instance) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return instance.Shutdown(ctx)
		},
	})
}
