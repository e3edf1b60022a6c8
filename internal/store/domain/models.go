package domain

import (
	"context"
	"errors"
)

// PriceMatchPolicy describes a store's willingness to match a competitor's
// advertised price, with an optional extra discount on top of the match.
type PriceMatchPolicy struct {
	HasPriceMatch       bool     `json:"has_price_match"`
	PolicyName          string   `json:"policy_name,omitempty"`
	Description         string   `json:"description,omitempty"`
	Conditions          []string `json:"conditions,omitempty"`
	ExcludedCompetitors []string `json:"excluded_competitors,omitempty"`
	MatchPercentage     float64  `json:"match_percentage"`
	AdditionalDiscount  float64  `json:"additional_discount"`
}

type StoreLocation struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Chain            string           `json:"chain"`
	Address          string           `json:"address"`
	Latitude         float64          `json:"latitude"`
	Longitude        float64          `json:"longitude"`
	Phone            string           `json:"phone,omitempty"`
	DistanceKm       float64          `json:"distance_km"`
	PriceMatchPolicy PriceMatchPolicy `json:"price_match_policy"`
	FlyerURL         string           `json:"flyer_url,omitempty"`
	LogoURL          string           `json:"logo_url,omitempty"`
}

type UserLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type FindNearbyRequest struct {
	Location UserLocation
	RadiusKm float64
}

// Directory is the immutable in-memory store catalog, loaded once at start.
type Directory interface {
	All() []StoreLocation
}

type Service interface {
	FindNearby(ctx context.Context, req FindNearbyRequest) ([]StoreLocation, error)
}

var ErrInvalidLocation = errors.New("invalid_location")
