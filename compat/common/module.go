package common

import (
	"go.scnd.dev/open/stackwalk"
	"go.scnd.dev/open/stackwalk/core"
	"go.uber.org/fx"
)

var Module = fx.Options(
	core.Module,
	fx.Provide(
		func(config *stackwalk.Config) FiberConfig {
			return config
		},
		Fiber,
	),
)
