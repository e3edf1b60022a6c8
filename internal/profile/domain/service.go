package domain

import (
	"context"
	"errors"
)

type CreateProfileRequest struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	HouseholdSize      int      `json:"household_size"`
	DietaryPreferences []string `json:"dietary_preferences"`
	FoodAllergies      []string `json:"food_allergies"`
	CuisinePreferences []string `json:"cuisine_preferences"`
	BudgetRange        string   `json:"budget_range"`
	CookingSkill       string   `json:"cooking_skill"`
	PreferredMealTypes []string `json:"preferred_meal_types"`
}

// UpdateProfileRequest merges only the fields the caller supplied; nil
// pointers leave the stored value untouched.
type UpdateProfileRequest struct {
	ID                 string
	Name               *string   `json:"name"`
	Email              *string   `json:"email"`
	HouseholdSize      *int      `json:"household_size"`
	DietaryPreferences *[]string `json:"dietary_preferences"`
	FoodAllergies      *[]string `json:"food_allergies"`
	CuisinePreferences *[]string `json:"cuisine_preferences"`
	BudgetRange        *string   `json:"budget_range"`
	CookingSkill       *string   `json:"cooking_skill"`
	PreferredMealTypes *[]string `json:"preferred_meal_types"`
}

type Service interface {
	Create(ctx context.Context, req CreateProfileRequest) (UserProfile, error)
	GetByID(ctx context.Context, id string) (UserProfile, error)
	Update(ctx context.Context, req UpdateProfileRequest) (UserProfile, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
)
