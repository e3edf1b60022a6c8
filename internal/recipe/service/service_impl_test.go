package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	profiledomain "github.com/salesavor/salesavor/internal/profile/domain"
	"github.com/salesavor/salesavor/internal/recipe/domain"
	"github.com/salesavor/salesavor/internal/recipe/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLLM struct {
	enabled bool
	text    string
	err     error
}

func (f *fakeLLM) Complete(ctx context.Context, system, prompt string) (string, error) {
	return f.text, f.err
}

func (f *fakeLLM) Enabled() bool {
	return f.enabled
}

type fakeProfiles struct {
	profile profiledomain.UserProfile
	err     error
}

func (f *fakeProfiles) Create(ctx context.Context, req profiledomain.CreateProfileRequest) (profiledomain.UserProfile, error) {
	return profiledomain.UserProfile{}, nil
}

func (f *fakeProfiles) GetByID(ctx context.Context, id string) (profiledomain.UserProfile, error) {
	return f.profile, f.err
}

func (f *fakeProfiles) Update(ctx context.Context, req profiledomain.UpdateProfileRequest) (profiledomain.UserProfile, error) {
	return profiledomain.UserProfile{}, nil
}

func (f *fakeProfiles) Delete(ctx context.Context, id string) error {
	return nil
}

func newTestService(t *testing.T, llm *fakeLLM, profiles profiledomain.Service) domain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	if llm == nil {
		llm = &fakeLLM{}
	}

	return New(Params{
		Log:      zap.NewNop(),
		GenID:    node,
		Pool:     repository.Provide(),
		LLM:      llm,
		Profiles: profiles,
	})
}

func TestGenerateReturnsAtMostThree(t *testing.T) {
	svc := newTestService(t, nil, nil)

	recipes := svc.Generate(context.Background(), domain.GenerateRequest{Servings: 2})
	require.Len(t, recipes, 3)
	for _, r := range recipes {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, 2, r.Servings)
		assert.NotEmpty(t, r.Instructions)
	}
}

func TestGenerateVeganExcludesMeatAndCheese(t *testing.T) {
	svc := newTestService(t, nil, nil)

	recipes := svc.Generate(context.Background(), domain.GenerateRequest{
		DietaryPreferences: []string{"vegan"},
		Servings:           4,
	})
	require.NotEmpty(t, recipes)
	for _, r := range recipes {
		name := strings.ToLower(r.Name)
		assert.NotContains(t, name, "chicken")
		assert.NotContains(t, name, "beef")
		assert.NotContains(t, name, "meat")
		assert.NotContains(t, name, "cheese")
	}
}

func TestGenerateVegetarianDropsMeatNamed(t *testing.T) {
	svc := newTestService(t, nil, nil)

	recipes := svc.Generate(context.Background(), domain.GenerateRequest{
		DietaryPreferences: []string{"vegetarian"},
	})
	require.NotEmpty(t, recipes)
	for _, r := range recipes {
		assert.NotContains(t, strings.ToLower(r.Name), "meat")
	}
}

func TestFilterFallsBackToFullPoolWhenEmptied(t *testing.T) {
	pool := []domain.Recipe{
		{Name: "Beef Chili", DietaryTags: []string{}},
		{Name: "Chicken Soup", DietaryTags: []string{}},
	}

	kept := filterByDietary(pool, []string{"vegan"})
	assert.Equal(t, pool, kept)
}

func TestFilterKeepsIntersectingTagsCaseInsensitively(t *testing.T) {
	pool := []domain.Recipe{
		{Name: "Beef Chili", DietaryTags: []string{"High-Protein"}},
		{Name: "Green Salad", DietaryTags: []string{"Vegan"}},
	}

	kept := filterByDietary(pool, []string{"VEGAN"})
	require.Len(t, kept, 1)
	assert.Equal(t, "Green Salad", kept[0].Name)
}

func TestGenerateUsesParsedLLMOutput(t *testing.T) {
	llm := &fakeLLM{
		enabled: true,
		text: "```json\n[{\"name\": \"Sale Veggie Skillet\", \"description\": \"d\", " +
			"\"ingredients\": [{\"name\": \"Bell Peppers\", \"quantity\": \"2\", \"unit\": \"each\", \"estimated_price\": 3.98}], " +
			"\"instructions\": [\"Cook\"], \"prep_time\": 5, \"cook_time\": 10, \"servings\": 4, " +
			"\"dietary_tags\": [\"vegetarian\"], \"estimated_cost\": 3.98}]\n```",
	}
	svc := newTestService(t, llm, nil)

	recipes := svc.Generate(context.Background(), domain.GenerateRequest{Servings: 4})
	require.Len(t, recipes, 1)
	assert.Equal(t, "Sale Veggie Skillet", recipes[0].Name)
	assert.NotEmpty(t, recipes[0].ID)
}

func TestGenerateFallsBackToTemplatesOnLLMError(t *testing.T) {
	llm := &fakeLLM{enabled: true, err: errors.New("upstream down")}
	svc := newTestService(t, llm, nil)

	recipes := svc.Generate(context.Background(), domain.GenerateRequest{})
	require.Len(t, recipes, 3)
	assert.Equal(t, "Hearty Beef and Potato Stew", recipes[0].Name)
}

func TestGenerateFallsBackToTemplatesOnUnparseableOutput(t *testing.T) {
	llm := &fakeLLM{enabled: true, text: "I cannot produce JSON today."}
	svc := newTestService(t, llm, nil)

	recipes := svc.Generate(context.Background(), domain.GenerateRequest{})
	require.Len(t, recipes, 3)
}

func TestGenerateBackfillsFromProfile(t *testing.T) {
	profiles := &fakeProfiles{profile: profiledomain.UserProfile{
		HouseholdSize:      6,
		DietaryPreferences: []string{"vegan"},
	}}
	svc := newTestService(t, nil, profiles)

	recipes := svc.Generate(context.Background(), domain.GenerateRequest{ProfileID: "123"})
	require.NotEmpty(t, recipes)
	for _, r := range recipes {
		assert.Equal(t, 6, r.Servings)
		assert.NotContains(t, strings.ToLower(r.Name), "beef")
	}
}

func TestGenerateIgnoresUnresolvableProfile(t *testing.T) {
	profiles := &fakeProfiles{err: profiledomain.ErrNotFound}
	svc := newTestService(t, nil, profiles)

	recipes := svc.Generate(context.Background(), domain.GenerateRequest{ProfileID: "123"})
	require.Len(t, recipes, 3)
	assert.Equal(t, 4, recipes[0].Servings)
}
