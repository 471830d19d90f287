package huhforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sprintboard/internal/models"
	"github.com/thenoetrevino/sprintboard/internal/services/board"
)

func TestTicketFormValuesRequest(t *testing.T) {
	t.Run("zero references mean none", func(t *testing.T) {
		v := NewTicketFormValues()
		v.Title = "Fix bug"
		req, err := v.Request()
		require.NoError(t, err)
		assert.Equal(t, "Medium", req.Priority)
		assert.Nil(t, req.EpicID)
		assert.Nil(t, req.SprintID)
		assert.Nil(t, req.StoryPoints)
	})

	t.Run("selected references and points", func(t *testing.T) {
		v := &TicketFormValues{Title: "x", Priority: "High", EpicID: 2, SprintID: 5, StoryPoints: " 8 "}
		req, err := v.Request()
		require.NoError(t, err)
		assert.Equal(t, 2, *req.EpicID)
		assert.Equal(t, 5, *req.SprintID)
		assert.Equal(t, 8, *req.StoryPoints)
	})

	t.Run("non-numeric points", func(t *testing.T) {
		v := &TicketFormValues{Title: "x", StoryPoints: "lots"}
		_, err := v.Request()
		assert.ErrorIs(t, err, board.ErrStoryPointsRange)
	})
}

func TestValidators(t *testing.T) {
	assert.Error(t, validateTitle("   "))
	assert.NoError(t, validateTitle("ok"))

	assert.NoError(t, validateStoryPoints(""))
	assert.NoError(t, validateStoryPoints("1"))
	assert.NoError(t, validateStoryPoints("100"))
	assert.Error(t, validateStoryPoints("0"))
	assert.Error(t, validateStoryPoints("150"))
	assert.Error(t, validateStoryPoints("x"))
}

func TestCreateTicketForm(t *testing.T) {
	epics := []*models.Epic{{ID: 1, Name: "Backend"}}
	sprints := []*models.Sprint{{ID: 1, Name: "S1", Status: models.SprintActive}}
	form := CreateTicketForm(NewTicketFormValues(), epics, sprints)
	assert.NotNil(t, form)
}
