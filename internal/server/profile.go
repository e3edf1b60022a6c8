package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	profiledomain "github.com/salesavor/salesavor/internal/profile/domain"
)

func (s *Server) CreateProfile(c *gin.Context) {
	var req profiledomain.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	created, err := s.profileSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, created)
}

func (s *Server) GetProfile(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	got, err := s.profileSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, got)
}

func (s *Server) UpdateProfile(c *gin.Context) {
	var req profiledomain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	updated, err := s.profileSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) DeleteProfile(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.profileSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
