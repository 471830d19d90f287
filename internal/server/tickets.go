package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/sprintboard/internal/events"
	"github.com/thenoetrevino/sprintboard/internal/models"
	"github.com/thenoetrevino/sprintboard/internal/services/board"
)

type ticketRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    string       `json:"priority"`
	EpicID      models.RefID `json:"epic_id"`
	SprintID    models.RefID `json:"sprint_id"`
	StoryPoints models.RefID `json:"story_points"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleListTickets(c *gin.Context) {
	tickets, err := s.app.BoardService.ListTickets(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"tickets": tickets})
}

func (s *Server) handleCreateTicket(c *gin.Context) {
	var req ticketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBadRequest(c, err)
		return
	}

	ticket, err := s.app.BoardService.CreateTicket(c.Request.Context(), board.CreateTicketRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		EpicID:      req.EpicID.ID,
		SprintID:    req.SprintID.ID,
		StoryPoints: req.StoryPoints.ID,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"ticket": ticket})
}

func (s *Server) handleGetTicket(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ticket, err := s.app.BoardService.GetTicket(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"ticket": ticket})
}

// handleTicketStatus moves a ticket between board columns.
func (s *Server) handleTicketStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBadRequest(c, err)
		return
	}

	ticket, err := s.app.BoardService.TransitionStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"ticket": ticket})
}

// handleDeleteTicket reports the number of deleted rows; 0 is not an error.
func (s *Server) handleDeleteTicket(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	changes, err := s.app.BoardService.DeleteTicket(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "Ticket deleted successfully", "changes": changes})
}

// handleBoard returns the three board columns, optionally for one sprint.
func (s *Server) handleBoard(c *gin.Context) {
	var ref models.RefID
	if raw := c.Query("sprint_id"); raw != "" {
		if err := ref.UnmarshalJSON([]byte(raw)); err != nil || (ref.ID != nil && *ref.ID <= 0) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sprint_id"})
			return
		}
	}

	sprintID := events.AllSprints
	if ref.ID != nil {
		sprintID = *ref.ID
	}

	columns, err := s.app.BoardService.Board(c.Request.Context(), sprintID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"columns": columns})
}
