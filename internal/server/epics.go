package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/sprintboard/internal/services/board"
)

type epicRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (s *Server) handleListEpics(c *gin.Context) {
	epics, err := s.app.BoardService.ListEpics(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"epics": epics})
}

func (s *Server) handleCreateEpic(c *gin.Context) {
	var req epicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBadRequest(c, err)
		return
	}

	epic, err := s.app.BoardService.CreateEpic(c.Request.Context(), board.CreateEpicRequest{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"epic": epic})
}

// handleDeleteEpic clears the epic from its tickets, then removes it.
func (s *Server) handleDeleteEpic(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := s.app.BoardService.DeleteEpic(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}
