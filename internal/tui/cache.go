package tui

import (
	"context"
	"sync"

	"github.com/thenoetrevino/sprintboard/internal/models"
	"github.com/thenoetrevino/sprintboard/internal/services/board"
)

// BoardCache holds the last fetched board per sprint filter.
//
// Invalidation rule: every mutation made through the cache and every
// board_changed event drops all entries, so the next read refetches the
// whole board. Entries are never patched in place.
type BoardCache struct {
	boards board.Service

	mu      sync.Mutex
	entries map[int][]*models.Column
	fetches int
}

// NewBoardCache creates an empty cache over boards
func NewBoardCache(boards board.Service) *BoardCache {
	return &BoardCache{
		boards:  boards,
		entries: map[int][]*models.Column{},
	}
}

// Columns returns the board for sprintID, fetching it on a miss
func (c *BoardCache) Columns(ctx context.Context, sprintID int) ([]*models.Column, error) {
	c.mu.Lock()
	cached, ok := c.entries[sprintID]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	columns, err := c.boards.Board(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[sprintID] = columns
	c.fetches++
	c.mu.Unlock()
	return columns, nil
}

// Invalidate drops every cached board
func (c *BoardCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// MoveTicket transitions a ticket and invalidates the cache
func (c *BoardCache) MoveTicket(ctx context.Context, ticketID int, status models.Status) (*models.Ticket, error) {
	defer c.Invalidate()
	return c.boards.TransitionStatus(ctx, ticketID, string(status))
}

// DeleteTicket deletes a ticket and invalidates the cache
func (c *BoardCache) DeleteTicket(ctx context.Context, ticketID int) (int64, error) {
	defer c.Invalidate()
	return c.boards.DeleteTicket(ctx, ticketID)
}

// Fetches reports how many times the board was loaded from the service
func (c *BoardCache) Fetches() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetches
}
