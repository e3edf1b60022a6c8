package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetFoodGuide(c *gin.Context) {
	country := strings.TrimSpace(c.Param("country"))

	guide, err := s.foodGuideSvc.GetByCountry(c.Request.Context(), country)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, guide)
}
