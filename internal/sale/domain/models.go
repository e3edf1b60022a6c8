package domain

import (
	"context"
	"time"
)

type SaleItem struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	OriginalPrice      float64   `json:"original_price"`
	SalePrice          float64   `json:"sale_price"`
	DiscountPercentage float64   `json:"discount_percentage"`
	StoreID            string    `json:"store_id"`
	Category           string    `json:"category"`
	Unit               string    `json:"unit"`
	ValidUntil         time.Time `json:"valid_until"`
}

// Catalog is the fixed set of discounted items. Entries carry no store or
// validity; those are stamped per query.
type Catalog interface {
	Items() []SaleItem
}

type Service interface {
	ItemsForStore(ctx context.Context, storeID string) []SaleItem
}
