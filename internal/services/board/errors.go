package board

import "github.com/thenoetrevino/sprintboard/internal/models"

// Validation errors. Each matches models.ErrValidation via errors.Is.
var (
	ErrEmptyTitle       = models.NewValidationError("title", "title is required")
	ErrTitleTooLong     = models.NewValidationError("title", "title cannot exceed 255 characters")
	ErrStoryPointsRange = models.NewValidationError("story_points", "story points must be between 1 and 100")
	ErrEmptyEpicName    = models.NewValidationError("name", "epic name is required")
	ErrInvalidColor     = models.NewValidationError("color", "color must be a #RRGGBB hex value")
	ErrEmptySprintName  = models.NewValidationError("name", "sprint name is required")
	ErrInvalidStartDate = models.NewValidationError("start_date", "start date must be YYYY-MM-DD")
	ErrInvalidEndDate   = models.NewValidationError("end_date", "end date must be YYYY-MM-DD")
	ErrInvalidTicketID  = models.NewValidationError("id", "invalid ticket ID")
	ErrInvalidEpicID    = models.NewValidationError("epic_id", "invalid epic ID")
	ErrInvalidSprintID  = models.NewValidationError("sprint_id", "invalid sprint ID")
)

// maxTitleLength bounds ticket titles
const maxTitleLength = 255
