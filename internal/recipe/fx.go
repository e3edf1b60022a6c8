package recipe

import (
	"github.com/salesavor/salesavor/internal/recipe/repository"
	"github.com/salesavor/salesavor/internal/recipe/service"
	"go.uber.org/fx"
)

var Module = fx.Module("recipe.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
