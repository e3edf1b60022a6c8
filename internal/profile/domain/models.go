package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type UserProfile struct {
	ID                 snowflake.ID                `gorm:"primaryKey" json:"id"`
	Name               string                      `json:"name,omitempty"`
	Email              string                      `json:"email,omitempty"`
	HouseholdSize      int                         `gorm:"not null;default:1" json:"household_size"`
	DietaryPreferences datatypes.JSONSlice[string] `json:"dietary_preferences"`
	FoodAllergies      datatypes.JSONSlice[string] `json:"food_allergies"`
	CuisinePreferences datatypes.JSONSlice[string] `json:"cuisine_preferences"`
	BudgetRange        string                      `gorm:"not null;default:moderate" json:"budget_range"`
	CookingSkill       string                      `gorm:"not null;default:beginner" json:"cooking_skill"`
	PreferredMealTypes datatypes.JSONSlice[string] `json:"preferred_meal_types"`
	CreatedAt          time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
