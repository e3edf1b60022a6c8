package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	grocerydomain "github.com/salesavor/salesavor/internal/grocerylist/domain"
	storedomain "github.com/salesavor/salesavor/internal/store/domain"
)

type generateGroceryListRequest struct {
	UserLocation struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Address   string   `json:"address"`
	} `json:"user_location"`
	SelectedRecipes    []string `json:"selected_recipes"`
	ServingsMultiplier float64  `json:"servings_multiplier"`
}

func (s *Server) GenerateGroceryList(c *gin.Context) {
	var req generateGroceryListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.UserLocation.Latitude == nil || req.UserLocation.Longitude == nil {
		AbortWithError(c, newValidationError("user_location", "invalid_location", "latitude and longitude are required"))
		return
	}

	selected := req.SelectedRecipes
	if selected == nil {
		selected = []string{}
	}

	list, err := s.grocerySvc.Generate(c.Request.Context(), grocerydomain.GenerateRequest{
		UserLocation: storedomain.UserLocation{
			Latitude:  *req.UserLocation.Latitude,
			Longitude: *req.UserLocation.Longitude,
			Address:   req.UserLocation.Address,
		},
		SelectedRecipes:    selected,
		ServingsMultiplier: req.ServingsMultiplier,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
