package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to os.Stdout and os.Stderr
	Out    io.Writer
	ErrOut io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut != nil {
		return f.ErrOut
	}
	return os.Stderr
}

// Success outputs a successful result. human renders the default format.
func (f *OutputFormatter) Success(data any, human func(w io.Writer) error) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
		if idsGetter, ok := data.(interface{ GetIDs() []int }); ok {
			for _, id := range idsGetter.GetIDs() {
				if _, err := fmt.Fprintf(f.out(), "%d\n", id); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if human != nil {
		return human(f.out())
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err under code and returns an *ExitError classified from it
func (f *OutputFormatter) Fail(code string, err error, suggestion string) error {
	_ = f.ErrorWithSuggestion(code, err.Error(), suggestion)
	return &ExitError{Code: ExitCodeFor(err), Err: err}
}

// Usage reports a usage error and returns an *ExitError with ExitUsage
func (f *OutputFormatter) Usage(message, suggestion string) error {
	_ = f.ErrorWithSuggestion("USAGE_ERROR", message, suggestion)
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf("%s", message)}
}

// ErrorCode builds an upper-case error code such as TICKET_NOT_FOUND
func ErrorCode(entity string, err error) string {
	switch ExitCodeFor(err) {
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitNotFound:
		return strings.ToUpper(entity) + "_NOT_FOUND"
	default:
		return strings.ToUpper(entity) + "_ERROR"
	}
}
