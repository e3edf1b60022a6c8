package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	foodguide "github.com/salesavor/salesavor/internal/foodguide"
	grocerydomain "github.com/salesavor/salesavor/internal/grocerylist/domain"
	profiledomain "github.com/salesavor/salesavor/internal/profile/domain"
	emailprovider "github.com/salesavor/salesavor/internal/providers/email"
	recipedomain "github.com/salesavor/salesavor/internal/recipe/domain"
	saledomain "github.com/salesavor/salesavor/internal/sale/domain"
	storedomain "github.com/salesavor/salesavor/internal/store/domain"
	storerepository "github.com/salesavor/salesavor/internal/store/repository"
	storeservice "github.com/salesavor/salesavor/internal/store/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSaleService struct {
	items []saledomain.SaleItem
}

func (f *fakeSaleService) ItemsForStore(ctx context.Context, storeID string) []saledomain.SaleItem {
	out := make([]saledomain.SaleItem, len(f.items))
	copy(out, f.items)
	for i := range out {
		out[i].StoreID = storeID
	}
	return out
}

type fakeRecipeService struct {
	recipes []recipedomain.Recipe
	lastReq recipedomain.GenerateRequest
}

func (f *fakeRecipeService) Generate(ctx context.Context, req recipedomain.GenerateRequest) []recipedomain.Recipe {
	f.lastReq = req
	return f.recipes
}

type fakeGroceryService struct {
	list grocerydomain.GroceryList
	err  error
}

func (f *fakeGroceryService) Generate(ctx context.Context, req grocerydomain.GenerateRequest) (grocerydomain.GroceryList, error) {
	if f.err != nil {
		return grocerydomain.GroceryList{}, f.err
	}
	list := f.list
	list.UserLocation = req.UserLocation
	list.SelectedRecipes = req.SelectedRecipes
	return list, nil
}

type fakeProfileService struct {
	profile profiledomain.UserProfile
	err     error
}

func (f *fakeProfileService) Create(ctx context.Context, req profiledomain.CreateProfileRequest) (profiledomain.UserProfile, error) {
	if f.err != nil {
		return profiledomain.UserProfile{}, f.err
	}
	out := f.profile
	out.Name = req.Name
	return out, nil
}

func (f *fakeProfileService) GetByID(ctx context.Context, id string) (profiledomain.UserProfile, error) {
	return f.profile, f.err
}

func (f *fakeProfileService) Update(ctx context.Context, req profiledomain.UpdateProfileRequest) (profiledomain.UserProfile, error) {
	return f.profile, f.err
}

func (f *fakeProfileService) Delete(ctx context.Context, id string) error {
	return f.err
}

func newTestRouter(srv *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	srv.engine = router
	srv.registerAPIRoutes()
	return router
}

func realStoreService() storedomain.Service {
	return storeservice.New(storeservice.Params{
		Log:       zap.NewNop(),
		Directory: storerepository.Provide(),
	})
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBufferString("")
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRootBanner(t *testing.T) {
	router := newTestRouter(&Server{})

	resp := doJSON(router, http.MethodGet, "/api/", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message": "Grocery Savings App API"}`, resp.Body.String())
}

func TestFindNearbyStoresReturnsSortedList(t *testing.T) {
	router := newTestRouter(&Server{storeSvc: realStoreService()})

	resp := doJSON(router, http.MethodPost, "/api/stores/nearby", `{"latitude": 43.6532, "longitude": -79.3832}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var stores []storedomain.StoreLocation
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stores))
	require.Len(t, stores, 8)
	assert.Equal(t, "Loblaws Superstore", stores[0].Name)
	for i := 1; i < len(stores); i++ {
		assert.LessOrEqual(t, stores[i-1].DistanceKm, stores[i].DistanceKm)
	}
}

func TestFindNearbyStoresRequiresCoordinates(t *testing.T) {
	router := newTestRouter(&Server{storeSvc: realStoreService()})

	resp := doJSON(router, http.MethodPost, "/api/stores/nearby", `{"address": "Toronto"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "validation_error")
}

func TestFindNearbyStoresRejectsBadRadius(t *testing.T) {
	router := newTestRouter(&Server{storeSvc: realStoreService()})

	resp := doJSON(router, http.MethodPost, "/api/stores/nearby?radius_km=abc", `{"latitude": 43.6532, "longitude": -79.3832}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetStoreSalesEchoesStoreID(t *testing.T) {
	sales := &fakeSaleService{items: []saledomain.SaleItem{
		{Name: "Pasta (500g)", OriginalPrice: 2.49, SalePrice: 1.49, ValidUntil: time.Now().Add(7 * 24 * time.Hour)},
	}}
	router := newTestRouter(&Server{saleSvc: sales})

	resp := doJSON(router, http.MethodGet, "/api/stores/food-basics/sales", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var items []saledomain.SaleItem
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "food-basics", items[0].StoreID)
}

func TestGenerateRecipesPassesRequestThrough(t *testing.T) {
	recipes := &fakeRecipeService{recipes: []recipedomain.Recipe{{Name: "Pasta Primavera"}}}
	router := newTestRouter(&Server{recipeSvc: recipes})

	resp := doJSON(router, http.MethodPost, "/api/recipes/generate",
		`{"dietary_preferences": ["vegan"], "servings": 2, "profile_id": " 42 "}`)
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Equal(t, []string{"vegan"}, recipes.lastReq.DietaryPreferences)
	assert.Equal(t, 2, recipes.lastReq.Servings)
	assert.Equal(t, "42", recipes.lastReq.ProfileID)

	var out []recipedomain.Recipe
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Len(t, out, 1)
}

func TestGenerateGroceryListValidation(t *testing.T) {
	router := newTestRouter(&Server{grocerySvc: &fakeGroceryService{}})

	resp := doJSON(router, http.MethodPost, "/api/grocery-list/generate", `{"selected_recipes": ["a"]}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGenerateGroceryListEchoesSelection(t *testing.T) {
	router := newTestRouter(&Server{grocerySvc: &fakeGroceryService{
		list: grocerydomain.GroceryList{ID: "1", TotalCost: 12.34},
	}})

	resp := doJSON(router, http.MethodPost, "/api/grocery-list/generate",
		`{"user_location": {"latitude": 43.6, "longitude": -79.4}, "selected_recipes": ["r1"], "servings_multiplier": 2}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var list grocerydomain.GroceryList
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	assert.Equal(t, []string{"r1"}, list.SelectedRecipes)
	assert.Equal(t, 12.34, list.TotalCost)
}

func TestProfileNotFoundMapsTo404(t *testing.T) {
	router := newTestRouter(&Server{profileSvc: &fakeProfileService{err: profiledomain.ErrNotFound}})

	resp := doJSON(router, http.MethodGet, "/api/profile/12345", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "not_found")
}

func TestProfileInvalidIDMapsTo400(t *testing.T) {
	router := newTestRouter(&Server{profileSvc: &fakeProfileService{err: profiledomain.ErrInvalidID}})

	resp := doJSON(router, http.MethodGet, "/api/profile/xyz", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateProfileReturnsRecord(t *testing.T) {
	router := newTestRouter(&Server{profileSvc: &fakeProfileService{}})

	resp := doJSON(router, http.MethodPost, "/api/profile", `{"name": "Sarah", "household_size": 4}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var got profiledomain.UserProfile
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "Sarah", got.Name)
}

func TestGetFoodGuide(t *testing.T) {
	router := newTestRouter(&Server{foodGuideSvc: foodguide.NewService()})

	resp := doJSON(router, http.MethodGet, "/api/food-guide/canada", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Canada's Food Guide")

	resp = doJSON(router, http.MethodGet, "/api/food-guide/france", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestEmailGroceryListSkippedWhenUnconfigured(t *testing.T) {
	router := newTestRouter(&Server{emailProvider: &emailprovider.NoOpProvider{}})

	resp := doJSON(router, http.MethodPost, "/api/email-grocery-list",
		`{"email": "user@example.com", "grocery_list_data": {"items": []}}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "skipped")
}

func TestEmailGroceryListRequiresValidAddress(t *testing.T) {
	router := newTestRouter(&Server{emailProvider: &emailprovider.NoOpProvider{}})

	resp := doJSON(router, http.MethodPost, "/api/email-grocery-list", `{"email": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
