package analytics

import "github.com/thenoetrevino/sprintboard/internal/models"

var ErrInvalidSprintID = models.NewValidationError("sprint_id", "invalid sprint ID")
