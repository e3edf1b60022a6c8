package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	grocerydomain "github.com/salesavor/salesavor/internal/grocerylist/domain"
	"github.com/salesavor/salesavor/internal/providers/email"
)

type emailGroceryListRequest struct {
	Email           string                    `json:"email"`
	UserName        string                    `json:"user_name"`
	GroceryListData grocerydomain.GroceryList `json:"grocery_list_data"`
}

func (s *Server) EmailGroceryList(c *gin.Context) {
	var req emailGroceryListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	to := strings.TrimSpace(req.Email)
	if to == "" || !strings.Contains(to, "@") {
		AbortWithError(c, newValidationError("email", "invalid_email", "a valid email address is required"))
		return
	}

	if !s.emailProvider.Enabled() {
		c.JSON(http.StatusOK, gin.H{
			"status":  "skipped",
			"message": "Email delivery is not configured",
		})
		return
	}

	body, err := email.RenderGroceryList(email.GroceryListEmailData{
		UserName:    strings.TrimSpace(req.UserName),
		GroceryList: req.GroceryListData,
	})
	if err != nil {
		AbortWithError(c, ErrInternal)
		return
	}

	if err := s.emailProvider.Send(c.Request.Context(), []string{to}, "Your Grocery Savings List", body); err != nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "sent",
		"message": "Grocery list sent to " + to,
	})
}
