package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/salesavor/salesavor/internal/clock"
	"github.com/salesavor/salesavor/internal/profile/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("profile.service"),
		clock: p.Clock,
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProfileRequest) (domain.UserProfile, error) {
	now := s.clock.Now()

	householdSize := req.HouseholdSize
	if householdSize <= 0 {
		householdSize = 1
	}
	budgetRange := strings.TrimSpace(req.BudgetRange)
	if budgetRange == "" {
		budgetRange = "moderate"
	}
	cookingSkill := strings.TrimSpace(req.CookingSkill)
	if cookingSkill == "" {
		cookingSkill = "beginner"
	}

	profile := domain.UserProfile{
		ID:                 s.genID.Generate(),
		Name:               strings.TrimSpace(req.Name),
		Email:              strings.TrimSpace(req.Email),
		HouseholdSize:      householdSize,
		DietaryPreferences: sliceOrEmpty(req.DietaryPreferences),
		FoodAllergies:      sliceOrEmpty(req.FoodAllergies),
		CuisinePreferences: sliceOrEmpty(req.CuisinePreferences),
		BudgetRange:        budgetRange,
		CookingSkill:       cookingSkill,
		PreferredMealTypes: sliceOrEmpty(req.PreferredMealTypes),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Insert(ctx, s.db, &profile); err != nil {
		return domain.UserProfile{}, err
	}

	return profile, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.UserProfile, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.UserProfile{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if item == nil {
		return domain.UserProfile{}, domain.ErrNotFound
	}

	return *item, nil
}

// Update merges only the provided fields into the stored profile and bumps
// updated_at. Concurrent updates are last-write-wins.
func (s *Service) Update(ctx context.Context, req domain.UpdateProfileRequest) (domain.UserProfile, error) {
	parsed, err := s.parseID(req.ID)
	if err != nil {
		return domain.UserProfile{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if item == nil {
		return domain.UserProfile{}, domain.ErrNotFound
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		item.Email = strings.TrimSpace(*req.Email)
	}
	if req.HouseholdSize != nil && *req.HouseholdSize > 0 {
		item.HouseholdSize = *req.HouseholdSize
	}
	if req.DietaryPreferences != nil {
		item.DietaryPreferences = sliceOrEmpty(*req.DietaryPreferences)
	}
	if req.FoodAllergies != nil {
		item.FoodAllergies = sliceOrEmpty(*req.FoodAllergies)
	}
	if req.CuisinePreferences != nil {
		item.CuisinePreferences = sliceOrEmpty(*req.CuisinePreferences)
	}
	if req.BudgetRange != nil {
		item.BudgetRange = strings.TrimSpace(*req.BudgetRange)
	}
	if req.CookingSkill != nil {
		item.CookingSkill = strings.TrimSpace(*req.CookingSkill)
	}
	if req.PreferredMealTypes != nil {
		item.PreferredMealTypes = sliceOrEmpty(*req.PreferredMealTypes)
	}
	item.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, s.db, item); err != nil {
		return domain.UserProfile{}, err
	}

	return *item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := s.parseID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, s.db, parsed)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}

	return nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func sliceOrEmpty(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.NewJSONSlice(values)
}
