package profile

import (
	"github.com/salesavor/salesavor/internal/profile/repository"
	"github.com/salesavor/salesavor/internal/profile/service"
	"go.uber.org/fx"
)

var Module = fx.Module("profile.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
