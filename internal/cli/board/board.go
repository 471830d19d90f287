// Package board renders the three-column board in the terminal
package board

import (
	"context"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/cli/handler"
	"github.com/thenoetrevino/sprintboard/internal/cli/styles"
	"github.com/thenoetrevino/sprintboard/internal/events"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

const columnWidth = 30

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show tickets in To Do, In Progress and Done columns",
		Long: `Show the board. Legacy status spellings are shown in their canonical column.

Examples:
  sprintboard board
  sprintboard board --sprint=2
  sprintboard board --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command("board", runBoard),
	}
	cmd.Flags().Int("sprint", events.AllSprints, "Only tickets in this sprint")
	cli.AddOutputFlags(cmd)
	return cmd
}

type columns []*models.Column

func (cs columns) GetIDs() []int {
	ids := []int{}
	for _, col := range cs {
		for _, t := range col.Tickets {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func runBoard(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	cols, err := c.App.BoardService.Board(ctx, args.Int("sprint"))
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: columns(cols),
		Human: func(w io.Writer) error {
			_, err := fmt.Fprintln(w, render(cols))
			return err
		},
	}, nil
}

func render(cols []*models.Column) string {
	rendered := make([]string, len(cols))
	for i, col := range cols {
		rendered[i] = renderColumn(col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderColumn(col *models.Column) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Tickets))))
	for _, t := range col.Tickets {
		b.WriteString("\n\n")
		b.WriteString(renderTicket(t))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.CardStyle.GetBorderTopForeground()).
		Padding(0, 1).
		Width(columnWidth).
		Render(b.String())
}

func renderTicket(t *models.Ticket) string {
	line := styles.SubtitleStyle.Render(fmt.Sprintf("#%d ", t.ID)) + styles.ValueStyle.Render(t.Title)
	meta := []string{styles.ColoredText(string(t.Priority), t.PriorityColor)}
	if t.EpicName != nil {
		color := models.DefaultEpicColor
		if t.EpicColor != nil {
			color = *t.EpicColor
		}
		meta = append(meta, styles.RenderChip(*t.EpicName, color))
	}
	if t.StoryPoints != nil {
		meta = append(meta, styles.SubtitleStyle.Render(fmt.Sprintf("%dpt", *t.StoryPoints)))
	}
	return line + "\n" + strings.Join(meta, " ")
}
