package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleOverview(c *gin.Context) {
	overview, err := s.app.AnalyticsService.Overview(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, overview)
}

func (s *Server) handleVelocity(c *gin.Context) {
	velocity, err := s.app.AnalyticsService.Velocity(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, velocity)
}
