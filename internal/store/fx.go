package store

import (
	"github.com/salesavor/salesavor/internal/store/repository"
	"github.com/salesavor/salesavor/internal/store/service"
	"go.uber.org/fx"
)

var Module = fx.Module("store.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
