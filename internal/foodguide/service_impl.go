package foodguide

import (
	"context"
	"strings"

	"github.com/salesavor/salesavor/internal/foodguide/domain"
)

type service struct {
	guides map[string]domain.FoodGuide
}

func NewService() domain.Service {
	return &service{guides: buildGuides()}
}

// GetByCountry resolves "canada" and "us"/"usa" case-insensitively; anything
// else is a validation error.
func (s *service) GetByCountry(ctx context.Context, country string) (domain.FoodGuide, error) {
	_ = ctx

	key := strings.ToUpper(strings.TrimSpace(country))
	switch key {
	case "US", "USA":
		key = "US"
	case "CANADA":
		key = "CANADA"
	default:
		return domain.FoodGuide{}, domain.ErrInvalidCountry
	}

	guide, ok := s.guides[key]
	if !ok {
		return domain.FoodGuide{}, domain.ErrInvalidCountry
	}
	return guide, nil
}

func buildGuides() map[string]domain.FoodGuide {
	return map[string]domain.FoodGuide{
		"CANADA": {
			Country:   "CANADA",
			Title:     "Canada's Food Guide",
			SourceURL: "https://food-guide.canada.ca/en/",
			Guidelines: []domain.Guideline{
				{
					FoodGroup:      "Vegetables and Fruits",
					Recommendation: "Make half your plate vegetables and fruits at every meal",
					Examples:       []string{"Leafy greens", "Bell peppers", "Berries", "Apples"},
				},
				{
					FoodGroup:      "Whole Grain Foods",
					Recommendation: "Choose whole grain foods for a quarter of your plate",
					Examples:       []string{"Brown rice", "Whole grain pasta", "Oats"},
				},
				{
					FoodGroup:      "Protein Foods",
					Recommendation: "Choose protein foods for a quarter of your plate, favouring plant-based options",
					Examples:       []string{"Beans", "Lentils", "Lean meats", "Eggs", "Tofu"},
				},
				{
					FoodGroup:      "Beverages",
					Recommendation: "Make water your drink of choice",
				},
			},
		},
		"US": {
			Country:   "US",
			Title:     "USDA MyPlate",
			SourceURL: "https://www.myplate.gov/",
			Guidelines: []domain.Guideline{
				{
					FoodGroup:      "Fruits",
					Recommendation: "Focus on whole fruits rather than juice",
					Examples:       []string{"Apples", "Bananas", "Berries"},
				},
				{
					FoodGroup:      "Vegetables",
					Recommendation: "Vary your veggies across the colour spectrum",
					Examples:       []string{"Broccoli", "Carrots", "Tomatoes", "Spinach"},
				},
				{
					FoodGroup:      "Grains",
					Recommendation: "Make half your grains whole grains",
					Examples:       []string{"Brown rice", "Oatmeal", "Whole wheat bread"},
				},
				{
					FoodGroup:      "Protein",
					Recommendation: "Vary your protein routine with seafood, beans and lean cuts",
					Examples:       []string{"Chicken breast", "Beans", "Fish"},
				},
				{
					FoodGroup:      "Dairy",
					Recommendation: "Move to low-fat or fat-free dairy milk or yogurt",
				},
			},
		},
	}
}
