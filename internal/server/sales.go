package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetStoreSales(c *gin.Context) {
	storeID := strings.TrimSpace(c.Param("id"))
	if storeID == "" {
		AbortWithError(c, newValidationError("id", "invalid_id", "store id is required"))
		return
	}

	items := s.saleSvc.ItemsForStore(c.Request.Context(), storeID)
	c.JSON(http.StatusOK, items)
}
