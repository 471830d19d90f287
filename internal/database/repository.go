package database

import (
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes entity repositories using struct embedding.
type Repository struct {
	*EpicRepo
	*SprintRepo
	*TicketRepo
	*AnalyticsRepo

	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EpicRepo:      &EpicRepo{db: db},
		SprintRepo:    &SprintRepo{db: db},
		TicketRepo:    &TicketRepo{db: db},
		AnalyticsRepo: &AnalyticsRepo{db: db},
		db:            db,
	}
}

// DB returns the underlying connection
func (r *Repository) DB() *sql.DB {
	return r.db
}
