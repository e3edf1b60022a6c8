package domain

import (
	"context"
	"errors"
)

type Guideline struct {
	FoodGroup      string   `json:"food_group"`
	Recommendation string   `json:"recommendation"`
	Examples       []string `json:"examples,omitempty"`
}

type FoodGuide struct {
	Country    string      `json:"country"`
	Title      string      `json:"title"`
	SourceURL  string      `json:"source_url"`
	Guidelines []Guideline `json:"guidelines"`
}

type Service interface {
	GetByCountry(ctx context.Context, country string) (FoodGuide, error)
}

var ErrInvalidCountry = errors.New("invalid_country")
