package ticket

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/cli/handler"
	"github.com/thenoetrevino/sprintboard/internal/cli/styles"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// ListCmd returns the ticket list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets",
		Long: `List tickets in creation order.

Examples:
  sprintboard ticket list
  sprintboard ticket list --sprint=2 --status="In Progress"
  sprintboard ticket list --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command("ticket", runList),
	}

	cmd.Flags().Int("sprint", 0, "Only tickets in this sprint")
	cmd.Flags().Int("epic", 0, "Only tickets in this epic")
	cmd.Flags().String("status", "", "Only tickets with this status (ToDo, InProgress, Done)")
	cli.AddOutputFlags(cmd)

	return cmd
}

type ticketList []*models.Ticket

func (l ticketList) GetIDs() []int {
	ids := make([]int, len(l))
	for i, t := range l {
		ids[i] = t.ID
	}
	return ids
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	var status models.Status
	if raw := args.String("status"); raw != "" {
		parsed, err := models.ParseStatus(raw)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	all, err := c.App.BoardService.ListTickets(ctx)
	if err != nil {
		return nil, err
	}

	tickets := filterTickets(all, args.Int("sprint"), args.Int("epic"), status)

	return &handler.Result{
		Data:  ticketList(tickets),
		Human: func(w io.Writer) error { return writeList(w, tickets) },
	}, nil
}

// filterTickets keeps tickets matching every non-zero filter
func filterTickets(tickets []*models.Ticket, sprintID, epicID int, status models.Status) []*models.Ticket {
	out := []*models.Ticket{}
	for _, t := range tickets {
		if sprintID > 0 && (t.SprintID == nil || *t.SprintID != sprintID) {
			continue
		}
		if epicID > 0 && (t.EpicID == nil || *t.EpicID != epicID) {
			continue
		}
		if status != "" && models.NormalizeStatus(string(t.Status)) != status {
			continue
		}
		out = append(out, t)
	}
	return out
}

func writeList(w io.Writer, tickets []*models.Ticket) error {
	if len(tickets) == 0 {
		_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render("No tickets"))
		return err
	}
	for _, t := range tickets {
		status := models.NormalizeStatus(string(t.Status))
		if _, err := fmt.Fprintf(w, "%-12s %s\n", status.Title(), summaryLine(t)); err != nil {
			return err
		}
	}
	return nil
}
