package sale

import (
	"github.com/salesavor/salesavor/internal/sale/repository"
	"github.com/salesavor/salesavor/internal/sale/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sale.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
