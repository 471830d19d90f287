package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

type withID struct{ id int }

func (w withID) GetID() int { return w.id }

func newFormatter(jsonOut, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOut, Quiet: quiet, Out: &out, ErrOut: &errOut}, &out, &errOut
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newFormatter(true, false)
	require.NoError(t, f.Success(map[string]int{"id": 7}, nil))

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &envelope))
	assert.Equal(t, true, envelope["success"])
	assert.EqualValues(t, 7, envelope["data"].(map[string]any)["id"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	t.Run("prints the ID", func(t *testing.T) {
		f, out, _ := newFormatter(true, true)
		require.NoError(t, f.Success(withID{42}, nil))
		assert.Equal(t, "42\n", out.String(), "quiet wins over json")
	})

	t.Run("prints nothing without an ID", func(t *testing.T) {
		f, out, _ := newFormatter(false, true)
		require.NoError(t, f.Success([]string{"x"}, nil))
		assert.Empty(t, out.String())
	})
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	f, out, _ := newFormatter(false, false)
	require.NoError(t, f.Success(withID{1}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, "created ticket 1")
		return err
	}))
	assert.Equal(t, "created ticket 1\n", out.String())
}

func TestOutputFormatter_ErrorWithSuggestion(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		f, out, errOut := newFormatter(true, false)
		require.NoError(t, f.ErrorWithSuggestion("TICKET_NOT_FOUND", "ticket 9 not found", "list tickets"))
		assert.Empty(t, errOut.String())

		var envelope map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &envelope))
		assert.Equal(t, false, envelope["success"])
		errData := envelope["error"].(map[string]any)
		assert.Equal(t, "TICKET_NOT_FOUND", errData["code"])
		assert.Equal(t, "list tickets", errData["suggestion"])
	})

	t.Run("human", func(t *testing.T) {
		f, out, errOut := newFormatter(false, false)
		require.NoError(t, f.Error("X", "boom"))
		assert.Empty(t, out.String())
		assert.Equal(t, "Error: boom\n", errOut.String())
	})
}

func TestFail(t *testing.T) {
	f, _, errOut := newFormatter(false, false)

	err := f.Fail("TICKET_NOT_FOUND", models.NotFoundError("ticket", 3), "")
	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Contains(t, errOut.String(), "ticket 3 not found")

	err = f.Fail("VALIDATION_ERROR", models.NewValidationError("title", "title is required"), "")
	assert.Equal(t, ExitValidation, ExitCode(err))

	err = f.Usage("missing id", "")
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitGeneral, ExitCode(errors.New("disk full")))
	assert.Equal(t, ExitDataErr, ExitCode(&ExitError{Code: ExitDataErr, Err: errors.New("bad stdin")}))
	assert.Equal(t, ExitNotFound, ExitCode(fmt.Errorf("wrapped: %w", models.ErrNotFound)))
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "VALIDATION_ERROR", ErrorCode("ticket", models.ErrValidation))
	assert.Equal(t, "SPRINT_NOT_FOUND", ErrorCode("sprint", models.NotFoundError("sprint", 1)))
	assert.Equal(t, "EPIC_ERROR", ErrorCode("epic", errors.New("x")))
}
