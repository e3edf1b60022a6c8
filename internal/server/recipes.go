package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	recipedomain "github.com/salesavor/salesavor/internal/recipe/domain"
)

type generateRecipesRequest struct {
	SaleItems          []recipedomain.SaleItemInput `json:"sale_items"`
	DietaryPreferences []string                     `json:"dietary_preferences"`
	Servings           int                          `json:"servings"`
	ProfileID          string                       `json:"profile_id"`
}

func (s *Server) GenerateRecipes(c *gin.Context) {
	var req generateRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if !s.recipeLimiter.Allow(c.Request.Context(), c.ClientIP()) {
		AbortWithError(c, ErrTooManyRequests)
		return
	}

	recipes := s.recipeSvc.Generate(c.Request.Context(), recipedomain.GenerateRequest{
		SaleItems:          req.SaleItems,
		DietaryPreferences: req.DietaryPreferences,
		Servings:           req.Servings,
		ProfileID:          strings.TrimSpace(req.ProfileID),
	})

	c.JSON(http.StatusOK, recipes)
}
