package grocerylist

import (
	"github.com/salesavor/salesavor/internal/grocerylist/service"
	"go.uber.org/fx"
)

var Module = fx.Module("grocerylist.service",
	fx.Provide(service.New),
)
