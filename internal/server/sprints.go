package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/sprintboard/internal/services/board"
)

type sprintRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Goal      string `json:"goal"`
}

func (s *Server) handleListSprints(c *gin.Context) {
	sprints, err := s.app.BoardService.ListSprints(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"sprints": sprints})
}

func (s *Server) handleCreateSprint(c *gin.Context) {
	var req sprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBadRequest(c, err)
		return
	}

	sprint, err := s.app.BoardService.CreateSprint(c.Request.Context(), board.CreateSprintRequest{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Goal:      req.Goal,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"sprint": sprint})
}

func (s *Server) handleGetSprint(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	sprint, err := s.app.BoardService.GetSprint(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"sprint": sprint})
}

// handleSprintStatus completes or reopens a sprint.
func (s *Server) handleSprintStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBadRequest(c, err)
		return
	}

	sprint, err := s.app.BoardService.SetSprintStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"sprint": sprint})
}

func (s *Server) handleDeleteSprint(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := s.app.BoardService.DeleteSprint(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}

func (s *Server) handleBurndown(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	burndown, err := s.app.AnalyticsService.SprintBurndown(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, burndown)
}
