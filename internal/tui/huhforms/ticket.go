package huhforms

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/sprintboard/internal/models"
	"github.com/thenoetrevino/sprintboard/internal/services/board"
)

// TicketFormValues is bound to the ticket form fields. EpicID and SprintID
// are 0 for "none"; StoryPoints is kept as text so it can be left empty.
type TicketFormValues struct {
	Title       string
	Description string
	Priority    string
	EpicID      int
	SprintID    int
	StoryPoints string
	Confirm     bool
}

// NewTicketFormValues returns values with the form's defaults
func NewTicketFormValues() *TicketFormValues {
	return &TicketFormValues{Priority: string(models.PriorityMedium), Confirm: true}
}

// Request converts the submitted values into a create request
func (v *TicketFormValues) Request() (board.CreateTicketRequest, error) {
	req := board.CreateTicketRequest{
		Title:       v.Title,
		Description: v.Description,
		Priority:    v.Priority,
	}
	if v.EpicID > 0 {
		req.EpicID = models.IntPtr(v.EpicID)
	}
	if v.SprintID > 0 {
		req.SprintID = models.IntPtr(v.SprintID)
	}
	if strings.TrimSpace(v.StoryPoints) != "" {
		points, err := strconv.Atoi(strings.TrimSpace(v.StoryPoints))
		if err != nil {
			return req, board.ErrStoryPointsRange
		}
		req.StoryPoints = &points
	}
	return req, nil
}

// validateTitle mirrors the board's title rule
func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// validateStoryPoints accepts an empty value or an integer in range
func validateStoryPoints(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	p, err := strconv.Atoi(s)
	if err != nil || p < models.MinStoryPoints || p > models.MaxStoryPoints {
		return fmt.Errorf("story points must be between %d and %d", models.MinStoryPoints, models.MaxStoryPoints)
	}
	return nil
}

// CreateTicketForm creates a huh form for a new ticket.
// The form writes through the pointers in values.
func CreateTicketForm(values *TicketFormValues, epics []*models.Epic, sprints []*models.Sprint) *huh.Form {
	priorityOptions := make([]huh.Option[string], 0, len(models.Priorities))
	for _, p := range models.Priorities {
		priorityOptions = append(priorityOptions, huh.NewOption(string(p), string(p)))
	}

	epicOptions := []huh.Option[int]{huh.NewOption("None", 0)}
	for _, e := range epics {
		epicOptions = append(epicOptions, huh.NewOption(e.Name, e.ID))
	}

	sprintOptions := []huh.Option[int]{huh.NewOption("None", 0)}
	for _, s := range sprints {
		if s.IsCompleted() {
			continue
		}
		sprintOptions = append(sprintOptions, huh.NewOption(s.Name, s.ID))
	}

	details := huh.NewGroup(
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter ticket title...").
			Validate(validateTitle).
			Value(&values.Title),
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown supported...").
			CharLimit(2000).
			Lines(5).
			Value(&values.Description),
	)

	planning := huh.NewGroup(
		huh.NewSelect[string]().
			Key("priority").
			Title("Priority").
			Options(priorityOptions...).
			Value(&values.Priority),
		huh.NewSelect[int]().
			Key("epic").
			Title("Epic").
			Options(epicOptions...).
			Value(&values.EpicID),
		huh.NewSelect[int]().
			Key("sprint").
			Title("Sprint").
			Options(sprintOptions...).
			Value(&values.SprintID),
		huh.NewInput().
			Key("story_points").
			Title("Story points").
			Placeholder("1-100, optional").
			Validate(validateStoryPoints).
			Value(&values.StoryPoints),
		huh.NewConfirm().
			Key("confirm").
			Title("Create this ticket?").
			Affirmative("Yes").
			Negative("No").
			Value(&values.Confirm),
	)

	return huh.NewForm(details, planning)
}
