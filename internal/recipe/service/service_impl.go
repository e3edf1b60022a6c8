package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/salesavor/salesavor/internal/observability/metrics"
	profiledomain "github.com/salesavor/salesavor/internal/profile/domain"
	llmprovider "github.com/salesavor/salesavor/internal/providers/llm"
	"github.com/salesavor/salesavor/internal/recipe/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	maxRecipes      = 3
	defaultServings = 4

	systemPrompt = "You are a professional chef and nutritionist helping families save money on groceries " +
		"by creating delicious meals using sale ingredients. Generate detailed recipes with precise " +
		"measurements and clear instructions."
)

var veganExclusions = []string{"chicken", "beef", "meat", "cheese"}

type Params struct {
	fx.In

	Log      *zap.Logger
	GenID    *snowflake.Node
	Pool     domain.Pool
	LLM      llmprovider.Provider
	Profiles profiledomain.Service `optional:"true"`
	Metrics  *metrics.Metrics      `optional:"true"`
}

type Service struct {
	log      *zap.Logger
	genID    *snowflake.Node
	pool     domain.Pool
	llm      llmprovider.Provider
	profiles profiledomain.Service
	metrics  *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("recipe.service"),
		genID:    p.GenID,
		pool:     p.Pool,
		llm:      p.LLM,
		profiles: p.Profiles,
		metrics:  p.Metrics,
	}
}

// Generate never returns empty and never fails: any internal error degrades
// to a single minimal fallback recipe.
func (s *Service) Generate(ctx context.Context, req domain.GenerateRequest) []domain.Recipe {
	prefs, servings := s.resolveDefaults(ctx, req)

	candidates, source := s.candidatePool(ctx, req, prefs, servings)
	selected := filterByDietary(candidates, prefs)
	if len(selected) > maxRecipes {
		selected = selected[:maxRecipes]
	}

	if len(selected) == 0 {
		s.log.Warn("recipe pool empty, serving fallback recipe")
		if s.metrics != nil {
			s.metrics.RecordRecipeFallback(ctx, "empty_pool")
		}
		return []domain.Recipe{s.fallbackRecipe(servings)}
	}

	for i := range selected {
		selected[i].ID = s.genID.Generate().String()
		selected[i].Servings = servings
		if selected[i].DietaryTags == nil {
			selected[i].DietaryTags = []string{}
		}
	}

	if s.metrics != nil {
		s.metrics.RecordRecipeGeneration(ctx, source)
	}

	return selected
}

func (s *Service) resolveDefaults(ctx context.Context, req domain.GenerateRequest) ([]string, int) {
	prefs := req.DietaryPreferences
	servings := req.Servings

	if req.ProfileID != "" && s.profiles != nil {
		profile, err := s.profiles.GetByID(ctx, req.ProfileID)
		if err != nil {
			s.log.Debug("profile backfill skipped", zap.String("profile_id", req.ProfileID), zap.Error(err))
		} else {
			if len(prefs) == 0 {
				prefs = []string(profile.DietaryPreferences)
			}
			if servings <= 0 && profile.HouseholdSize > 0 {
				servings = profile.HouseholdSize
			}
		}
	}

	if servings <= 0 {
		servings = defaultServings
	}

	return prefs, servings
}

// candidatePool prefers the external generator when configured; any call or
// parse failure falls back to the fixed templates without surfacing.
func (s *Service) candidatePool(ctx context.Context, req domain.GenerateRequest, prefs []string, servings int) ([]domain.Recipe, string) {
	if s.llm == nil || !s.llm.Enabled() {
		return s.pool.Templates(), "templates"
	}

	text, err := s.llm.Complete(ctx, systemPrompt, buildPrompt(req.SaleItems, prefs, servings))
	if err != nil {
		s.log.Warn("text generation failed, using templates", zap.Error(err))
		if s.metrics != nil {
			s.metrics.RecordRecipeFallback(ctx, "llm_error")
		}
		return s.pool.Templates(), "templates"
	}

	recipes, err := parseRecipes(text)
	if err != nil || len(recipes) == 0 {
		s.log.Warn("unparseable generation output, using templates", zap.Error(err))
		if s.metrics != nil {
			s.metrics.RecordRecipeFallback(ctx, "parse_error")
		}
		return s.pool.Templates(), "templates"
	}

	return recipes, "llm"
}

func (s *Service) fallbackRecipe(servings int) domain.Recipe {
	return domain.Recipe{
		ID:          s.genID.Generate().String(),
		Name:        "Simple Seasoned Rice",
		Description: "A minimal pantry dish for when nothing else is available",
		Ingredients: []domain.Ingredient{
			{Name: "Rice", Quantity: "2", Unit: "cups", EstimatedPrice: 1.50},
		},
		Instructions: []string{
			"Rinse the rice under cold water",
			"Cook according to package directions",
			"Season with salt, pepper and any oil or butter on hand",
		},
		PrepTime:      5,
		CookTime:      20,
		Servings:      servings,
		DietaryTags:   []string{"vegetarian", "vegan", "gluten-free"},
		EstimatedCost: 1.50,
	}
}

// filterByDietary applies coarse tag compatibility in pool order. If the
// filter removes everything, the full pool is returned instead so callers
// always get candidates when the pool is non-empty.
func filterByDietary(pool []domain.Recipe, prefs []string) []domain.Recipe {
	if len(prefs) == 0 {
		return pool
	}

	wanted := make(map[string]struct{}, len(prefs))
	for _, pref := range prefs {
		wanted[strings.ToLower(strings.TrimSpace(pref))] = struct{}{}
	}
	_, wantsVegetarian := wanted["vegetarian"]
	_, wantsVegan := wanted["vegan"]

	kept := make([]domain.Recipe, 0, len(pool))
	for _, recipe := range pool {
		if tagsIntersect(recipe.DietaryTags, wanted) {
			kept = append(kept, recipe)
			continue
		}

		name := strings.ToLower(recipe.Name)
		if wantsVegetarian && strings.Contains(name, "meat") {
			continue
		}
		if wantsVegan && containsAny(name, veganExclusions) {
			continue
		}

		kept = append(kept, recipe)
	}

	if len(kept) == 0 {
		return pool
	}
	return kept
}

func tagsIntersect(tags []string, wanted map[string]struct{}) bool {
	for _, tag := range tags {
		if _, ok := wanted[strings.ToLower(strings.TrimSpace(tag))]; ok {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func buildPrompt(items []domain.SaleItemInput, prefs []string, servings int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d diverse, family-friendly recipes using primarily these sale ingredients:\n\n", maxRecipes)
	for _, item := range items {
		fmt.Fprintf(&b, "- %s ($%.2f, was $%.2f)\n", item.Name, item.SalePrice, item.OriginalPrice)
	}

	if len(prefs) > 0 {
		fmt.Fprintf(&b, "\nDietary preferences: %s\n", strings.Join(prefs, ", "))
	} else {
		b.WriteString("\nNo dietary restrictions\n")
	}
	fmt.Fprintf(&b, "Servings: %d\n\n", servings)

	b.WriteString(`Format your response as a JSON array with this structure:
[
  {
    "name": "Recipe Name",
    "description": "Brief description",
    "ingredients": [
      {"name": "ingredient name", "quantity": "amount", "unit": "measurement", "estimated_price": 0.00}
    ],
    "instructions": ["Step 1", "Step 2"],
    "prep_time": 15,
    "cook_time": 30,
    "servings": 4,
    "dietary_tags": ["tag1"],
    "estimated_cost": 0.00
  }
]

Ensure recipes are practical, economical, and use the sale ingredients effectively.`)

	return b.String()
}

func parseRecipes(text string) ([]domain.Recipe, error) {
	trimmed := strings.TrimSpace(text)

	// Models often wrap JSON in a fenced code block.
	if idx := strings.Index(trimmed, "["); idx >= 0 {
		if end := strings.LastIndex(trimmed, "]"); end > idx {
			trimmed = trimmed[idx : end+1]
		}
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal([]byte(trimmed), &recipes); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}

	return recipes, nil
}
