package epic

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/cli/handler"
	"github.com/thenoetrevino/sprintboard/internal/services/board"
)

// CreateCmd returns the epic create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new epic",
		Long: `Create a new epic. Without --color a random color is picked.

Examples:
  sprintboard epic create --name=Backend
  sprintboard epic create --name=Frontend --color="#3b82f6" --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command("epic", runCreate),
	}

	cmd.Flags().String("name", "", "Epic name (required)")
	cmd.Flags().String("color", "", "Hex color such as #112233")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	if !args.IsSet("name") {
		return nil, args.Formatter.Usage("--name is required", "")
	}

	epic, err := c.App.BoardService.CreateEpic(ctx, board.CreateEpicRequest{
		Name:  args.String("name"),
		Color: args.String("color"),
	})
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data:  epic,
		Human: func(w io.Writer) error { return writeEpic(w, "Created", epic) },
	}, nil
}
