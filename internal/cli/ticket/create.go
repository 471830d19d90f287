package ticket

import (
	"context"
	"errors"
	"fmt"
	"io"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/cli/handler"
	"github.com/thenoetrevino/sprintboard/internal/services/board"
	"github.com/thenoetrevino/sprintboard/internal/tui/huhforms"
)

// CreateCmd returns the ticket create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new ticket",
		Long: `Create a new ticket. Every ticket starts in ToDo.

Examples:
  # Simple ticket
  sprintboard ticket create --title="Fix bug" --priority=high

  # In an epic and a sprint, with story points
  sprintboard ticket create --title="Add login" --epic=2 --sprint=1 --points=5

  # Quiet mode for bash capture
  TICKET_ID=$(sprintboard ticket create --title="Fix bug" --quiet)

  # Description from stdin
  cat notes.md | sprintboard ticket create --title="Spike" --description=-

  # Fill in a form instead of flags
  sprintboard ticket create --interactive
`,
		RunE: handler.Command("ticket", runCreate),
	}

	cmd.Flags().String("title", "", "Ticket title (required unless --interactive)")
	cmd.Flags().String("description", "", "Ticket description in markdown (use - for stdin)")
	cmd.Flags().String("priority", "Medium", "Priority: low, medium, high")
	cmd.Flags().Int("epic", 0, "Epic ID")
	cmd.Flags().Int("sprint", 0, "Sprint ID")
	cmd.Flags().Int("points", 0, "Story points (1-100)")
	cmd.Flags().BoolP("interactive", "i", false, "Fill in the ticket with a form")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	var (
		req board.CreateTicketRequest
		err error
	)
	if args.Bool("interactive") {
		req, err = requestFromForm(ctx, c, args)
	} else {
		req, err = requestFromFlags(args)
	}
	if err != nil {
		return nil, err
	}

	ticket, err := c.App.BoardService.CreateTicket(ctx, req)
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: ticket,
		Human: func(w io.Writer) error {
			return writeSummary(w, "Created", ticket)
		},
	}, nil
}

func requestFromFlags(args *handler.Arguments) (board.CreateTicketRequest, error) {
	if !args.IsSet("title") {
		return board.CreateTicketRequest{}, args.Formatter.Usage("--title is required",
			"Pass --title or use --interactive")
	}

	description, err := cli.ReadDescription(args.String("description"), args.Cmd().InOrStdin())
	if err != nil {
		_ = args.Formatter.Error("STDIN_READ_ERROR", err.Error())
		return board.CreateTicketRequest{}, &cli.ExitError{Code: cli.ExitDataErr, Err: err}
	}

	req := board.CreateTicketRequest{
		Title:       args.String("title"),
		Description: description,
		Priority:    args.String("priority"),
		EpicID:      cli.OptionalID(args.Int("epic")),
		SprintID:    cli.OptionalID(args.Int("sprint")),
	}
	// An explicit --points=0 still reaches validation
	if args.IsSet("points") {
		points := args.Int("points")
		req.StoryPoints = &points
	}
	return req, nil
}

func requestFromForm(ctx context.Context, c *cli.CLI, args *handler.Arguments) (board.CreateTicketRequest, error) {
	epics, err := c.App.BoardService.ListEpics(ctx)
	if err != nil {
		return board.CreateTicketRequest{}, err
	}
	sprints, err := c.App.BoardService.ListSprints(ctx)
	if err != nil {
		return board.CreateTicketRequest{}, err
	}

	values := huhforms.NewTicketFormValues()
	form := huhforms.CreateTicketForm(values, epics, sprints).
		WithTheme(huhforms.CreateTheme(c.Config.Theme)).
		WithKeyMap(huhforms.CreateKeyMapWithShiftEnter())
	err = form.Run()
	if err != nil && !errors.Is(err, huh.ErrUserAborted) {
		return board.CreateTicketRequest{}, fmt.Errorf("ticket form failed: %w", err)
	}
	if err != nil || !values.Confirm {
		fmt.Fprintln(args.Cmd().ErrOrStderr(), "Ticket creation cancelled")
		return board.CreateTicketRequest{}, &cli.ExitError{Code: cli.ExitSuccess, Err: errors.New("ticket creation cancelled")}
	}
	return values.Request()
}
