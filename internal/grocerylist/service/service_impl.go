package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/salesavor/salesavor/internal/clock"
	"github.com/salesavor/salesavor/internal/grocerylist/domain"
	"github.com/salesavor/salesavor/internal/observability/metrics"
	saledomain "github.com/salesavor/salesavor/internal/sale/domain"
	storedomain "github.com/salesavor/salesavor/internal/store/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	searchRadiusKm = 25
	maxListItems   = 8
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Clock   clock.Clock
	GenID   *snowflake.Node
	Stores  storedomain.Service
	Catalog saledomain.Catalog
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	clock   clock.Clock
	genID   *snowflake.Node
	stores  storedomain.Service
	catalog saledomain.Catalog
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("grocerylist.service"),
		clock:   p.Clock,
		genID:   p.GenID,
		stores:  p.Stores,
		catalog: p.Catalog,
		metrics: p.Metrics,
	}
}

// storeCandidate is one (store, price) pairing for an ingredient.
type storeCandidate struct {
	store         storedomain.StoreLocation
	originalPrice float64
	salePrice     float64
}

// Generate builds a priced shopping list from the sale catalog and the
// stores near the given location.
//
// Venue selection is deliberately not a global minimum: stores are scanned
// closest-first and the first qualifying price-match venue wins, modeling a
// shopper picking one store to price-match at. A policy with a positive
// additional discount qualifies only if the discounted price beats the best
// plain sale price; a zero-discount policy is an exact match and is adopted
// immediately.
func (s *Service) Generate(ctx context.Context, req domain.GenerateRequest) (domain.GroceryList, error) {
	nearby, err := s.stores.FindNearby(ctx, storedomain.FindNearbyRequest{
		Location: req.UserLocation,
		RadiusKm: searchRadiusKm,
	})
	if err != nil {
		if errors.Is(err, storedomain.ErrInvalidLocation) {
			return domain.GroceryList{}, domain.ErrInvalidLocation
		}
		return domain.GroceryList{}, err
	}

	multiplier := req.ServingsMultiplier
	if multiplier <= 0 {
		multiplier = 1.0
	}

	items := make([]domain.GroceryListItem, 0, maxListItems)
	totalCost := 0.0
	totalSavings := 0.0

	for _, entry := range s.catalog.Items() {
		if len(items) >= maxListItems {
			break
		}
		if len(nearby) == 0 {
			break
		}

		candidates := make([]storeCandidate, 0, len(nearby))
		for _, store := range nearby {
			candidates = append(candidates, storeCandidate{
				store:         store,
				originalPrice: entry.OriginalPrice,
				salePrice:     entry.SalePrice,
			})
		}

		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.salePrice < best.salePrice {
				best = c
			}
		}

		venue := best.store
		realized := best.salePrice
		priceMatched := false
		for _, store := range nearby {
			policy := store.PriceMatchPolicy
			if !policy.HasPriceMatch {
				continue
			}
			if policy.AdditionalDiscount > 0 {
				candidate := best.salePrice * (1 - policy.AdditionalDiscount/100)
				if candidate < realized {
					venue = store
					realized = candidate
					priceMatched = true
					break
				}
				continue
			}
			venue = store
			realized = best.salePrice
			priceMatched = true
			break
		}

		salePrice := realized * multiplier
		item := domain.GroceryListItem{
			Ingredient:        entry.Name,
			Quantity:          fmt.Sprintf("%.1f %s", multiplier, entry.Unit),
			StoreName:         venue.Name,
			StoreID:           venue.ID,
			Price:             best.originalPrice * multiplier,
			IsOnSale:          true,
			SalePrice:         &salePrice,
			PriceMatchApplied: priceMatched,
		}
		items = append(items, item)

		totalCost += salePrice
		totalSavings += (best.originalPrice - realized) * multiplier
	}

	list := domain.GroceryList{
		ID:              s.genID.Generate().String(),
		UserLocation:    req.UserLocation,
		SelectedRecipes: req.SelectedRecipes,
		Items:           items,
		TotalCost:       totalCost,
		TotalSavings:    totalSavings,
		CreatedAt:       s.clock.Now(),
	}

	if s.metrics != nil {
		s.metrics.RecordGroceryList(ctx)
	}
	s.log.Info("grocery list generated",
		zap.Int("items", len(items)),
		zap.Float64("total_cost", totalCost),
		zap.Float64("total_savings", totalSavings),
	)

	return list, nil
}
