package domain

import "context"

type Ingredient struct {
	Name           string  `json:"name"`
	Quantity       string  `json:"quantity"`
	Unit           string  `json:"unit"`
	EstimatedPrice float64 `json:"estimated_price"`
}

type Recipe struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Ingredients   []Ingredient `json:"ingredients"`
	Instructions  []string     `json:"instructions"`
	PrepTime      int          `json:"prep_time"`
	CookTime      int          `json:"cook_time"`
	Servings      int          `json:"servings"`
	DietaryTags   []string     `json:"dietary_tags"`
	EstimatedCost float64      `json:"estimated_cost"`
}

type SaleItemInput struct {
	Name          string  `json:"name"`
	OriginalPrice float64 `json:"original_price"`
	SalePrice     float64 `json:"sale_price"`
}

type GenerateRequest struct {
	SaleItems          []SaleItemInput
	DietaryPreferences []string
	Servings           int
	ProfileID          string
}

// Pool is the fixed set of recipe templates used when no external
// text-generation provider is configured or when it fails.
type Pool interface {
	Templates() []Recipe
}

// Service never fails: any internal error degrades to a minimal fallback
// recipe rather than surfacing to the caller.
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) []Recipe
}
