package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	storedomain "github.com/salesavor/salesavor/internal/store/domain"
)

type nearbyStoresRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

func (s *Server) FindNearbyStores(c *gin.Context) {
	var req nearbyStoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		AbortWithError(c, newValidationError("location", "invalid_location", "latitude and longitude are required"))
		return
	}

	radius := 0.0
	if raw := strings.TrimSpace(c.Query("radius_km")); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			AbortWithError(c, newValidationError("radius_km", "invalid_radius_km", "invalid radius_km"))
			return
		}
		radius = parsed
	}

	stores, err := s.storeSvc.FindNearby(c.Request.Context(), storedomain.FindNearbyRequest{
		Location: storedomain.UserLocation{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
			Address:   strings.TrimSpace(req.Address),
		},
		RadiusKm: radius,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stores)
}
