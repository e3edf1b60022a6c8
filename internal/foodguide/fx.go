package foodguide

import "go.uber.org/fx"

var Module = fx.Module("foodguide.service",
	fx.Provide(NewService),
)
