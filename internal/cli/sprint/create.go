package sprint

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/cli/handler"
	"github.com/thenoetrevino/sprintboard/internal/services/board"
)

// CreateCmd returns the sprint create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new sprint",
		Long: `Create a new active sprint. Dates are YYYY-MM-DD.

Examples:
  sprintboard sprint create --name="Sprint 1" --start=2024-01-01 --end=2024-01-14
  sprintboard sprint create --name="Sprint 2" --start=2024-01-15 --end=2024-01-28 --goal="Ship login"
`,
		Args: cobra.NoArgs,
		RunE: handler.Command("sprint", runCreate),
	}

	cmd.Flags().String("name", "", "Sprint name (required)")
	cmd.Flags().String("start", "", "Start date, YYYY-MM-DD (required)")
	cmd.Flags().String("end", "", "End date, YYYY-MM-DD (required)")
	cmd.Flags().String("goal", "", "Sprint goal")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	for _, flag := range []string{"name", "start", "end"} {
		if !args.IsSet(flag) {
			return nil, args.Formatter.Usage("--"+flag+" is required", "")
		}
	}

	sprint, err := c.App.BoardService.CreateSprint(ctx, board.CreateSprintRequest{
		Name:      args.String("name"),
		StartDate: args.String("start"),
		EndDate:   args.String("end"),
		Goal:      args.String("goal"),
	})
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data:  sprint,
		Human: func(w io.Writer) error { return writeSprint(w, "Created", sprint) },
	}, nil
}
