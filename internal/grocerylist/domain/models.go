package domain

import (
	"context"
	"errors"
	"time"

	storedomain "github.com/salesavor/salesavor/internal/store/domain"
)

type GroceryListItem struct {
	Ingredient        string   `json:"ingredient"`
	Quantity          string   `json:"quantity"`
	StoreName         string   `json:"store_name"`
	StoreID           string   `json:"store_id"`
	Price             float64  `json:"price"`
	IsOnSale          bool     `json:"is_on_sale"`
	SalePrice         *float64 `json:"sale_price,omitempty"`
	PriceMatchApplied bool     `json:"price_match_applied"`
}

type GroceryList struct {
	ID              string                   `json:"id"`
	UserLocation    storedomain.UserLocation `json:"user_location"`
	SelectedRecipes []string                 `json:"selected_recipes"`
	Items           []GroceryListItem        `json:"items"`
	TotalCost       float64                  `json:"total_cost"`
	TotalSavings    float64                  `json:"total_savings"`
	CreatedAt       time.Time                `json:"created_at"`
}

type GenerateRequest struct {
	UserLocation       storedomain.UserLocation
	SelectedRecipes    []string
	ServingsMultiplier float64
}

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (GroceryList, error)
}

var ErrInvalidLocation = errors.New("invalid_location")
