package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/salesavor/salesavor/internal/clock"
	"github.com/salesavor/salesavor/internal/sale/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const saleValidity = 7 * 24 * time.Hour

type Params struct {
	fx.In

	Log     *zap.Logger
	Clock   clock.Clock
	GenID   *snowflake.Node
	Catalog domain.Catalog
}

type Service struct {
	log     *zap.Logger
	clock   clock.Clock
	genID   *snowflake.Node
	catalog domain.Catalog
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("sale.service"),
		clock:   p.Clock,
		genID:   p.GenID,
		catalog: p.Catalog,
	}
}

// ItemsForStore returns the catalog stamped with the requested store id and
// a one-week validity window. The catalog does not vary per store yet; the
// id is echoed onto every item.
func (s *Service) ItemsForStore(ctx context.Context, storeID string) []domain.SaleItem {
	_ = ctx

	validUntil := s.clock.Now().Add(saleValidity)
	items := s.catalog.Items()
	for i := range items {
		items[i].ID = s.genID.Generate().String()
		items[i].StoreID = storeID
		items[i].ValidUntil = validUntil
	}

	return items
}
