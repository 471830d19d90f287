// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/cli/styles"
)

// Result is what a command produced: Data for JSON and quiet output, Human
// for the default rendering.
type Result struct {
	Data  any
	Human func(w io.Writer) error
}

// Func executes one command against an initialized CLI
type Func func(ctx context.Context, c *cli.CLI, args *Arguments) (*Result, error)

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Args      []string
	Changed   map[string]string // flags explicitly set by the user
	Formatter *cli.OutputFormatter
	cmd       *cobra.Command
}

// Cmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) Cmd() *cobra.Command {
	return a.cmd
}

// String returns a string flag value
func (a *Arguments) String(name string) string {
	v, _ := a.cmd.Flags().GetString(name)
	return v
}

// Int returns an int flag value
func (a *Arguments) Int(name string) int {
	v, _ := a.cmd.Flags().GetInt(name)
	return v
}

// Bool returns a bool flag value
func (a *Arguments) Bool(name string) bool {
	v, _ := a.cmd.Flags().GetBool(name)
	return v
}

// IsSet reports whether the user passed the flag
func (a *Arguments) IsSet(name string) bool {
	_, ok := a.Changed[name]
	return ok
}

// ID parses the positional argument at index i as an entity ID
func (a *Arguments) ID(i int, entity string) (int, error) {
	if i >= len(a.Args) {
		return 0, a.Formatter.Usage(entity+" ID is required", "")
	}
	id, err := cli.ParseIDArg(a.Args[i], entity)
	if err != nil {
		return 0, a.Formatter.Usage(err.Error(), "")
	}
	return id, nil
}

// Command wraps common command execution logic and returns a cobra RunE.
// entity names the resource for error codes such as TICKET_NOT_FOUND.
func Command(entity string, fn Func) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		formatter := cli.Formatter(cmd)

		c, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return formatter.Fail("INITIALIZATION_ERROR", err, "")
		}
		defer func() {
			if err := c.Close(); err != nil {
				slog.Error("error closing CLI", "error", err)
			}
		}()
		styles.Init(c.Config.Theme)

		arguments := &Arguments{
			Args:      args,
			Changed:   changedFlags(cmd),
			Formatter: formatter,
			cmd:       cmd,
		}
		slog.Debug("running command", "command", cmd.CommandPath(), "flags", arguments.Changed)

		result, err := fn(ctx, c, arguments)
		if err != nil {
			var exitErr *cli.ExitError
			if errors.As(err, &exitErr) {
				return err
			}
			return formatter.Fail(cli.ErrorCode(entity, err), err, suggestionFor(entity, err))
		}
		return formatter.Success(result.Data, result.Human)
	}
}

// changedFlags collects every flag the user set explicitly
func changedFlags(cmd *cobra.Command) map[string]string {
	changed := map[string]string{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})
	return changed
}

func suggestionFor(entity string, err error) string {
	if cli.ExitCodeFor(err) == cli.ExitNotFound {
		return "Use 'sprintboard " + entity + " list' to see available IDs"
	}
	return ""
}
