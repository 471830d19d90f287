package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

func ticketsWithStatuses(statuses ...string) []*models.Ticket {
	tickets := make([]*models.Ticket, len(statuses))
	for i, s := range statuses {
		tickets[i] = &models.Ticket{ID: i + 1, Status: models.Status(s)}
	}
	return tickets
}

func TestPartitionByColumn(t *testing.T) {
	t.Run("empty input gives three empty columns", func(t *testing.T) {
		columns := PartitionByColumn(nil)
		require.Len(t, columns, 3)
		for i, status := range models.Statuses {
			assert.Equal(t, status, columns[i].Status)
			assert.NotNil(t, columns[i].Tickets)
			assert.Empty(t, columns[i].Tickets)
		}
		assert.Equal(t, "To Do", columns[0].Title)
		assert.Equal(t, "In Progress", columns[1].Title)
		assert.Equal(t, "Done", columns[2].Title)
	})

	t.Run("legacy spellings share a bucket with canonical ones", func(t *testing.T) {
		tickets := ticketsWithStatuses("ToDo", "To Do", "InProgress", "In Progress", "Done")
		columns := PartitionByColumn(tickets)

		assert.Len(t, columns[0].Tickets, 2)
		assert.Len(t, columns[1].Tickets, 2)
		assert.Len(t, columns[2].Tickets, 1)
	})

	t.Run("every ticket lands in exactly one column", func(t *testing.T) {
		tickets := ticketsWithStatuses("Done", "To Do", "garbage", "InProgress", "", "Done", "In Progress")
		columns := PartitionByColumn(tickets)

		seen := map[int]int{}
		total := 0
		for _, col := range columns {
			for _, ticket := range col.Tickets {
				seen[ticket.ID]++
				total++
			}
		}
		assert.Equal(t, len(tickets), total)
		for _, ticket := range tickets {
			assert.Equal(t, 1, seen[ticket.ID], "ticket %d", ticket.ID)
		}
	})

	t.Run("arrival order preserved within a column", func(t *testing.T) {
		tickets := ticketsWithStatuses("Done", "ToDo", "Done", "To Do", "Done")
		columns := PartitionByColumn(tickets)

		ids := func(col *models.Column) []int {
			out := []int{}
			for _, t := range col.Tickets {
				out = append(out, t.ID)
			}
			return out
		}
		assert.Equal(t, []int{2, 4}, ids(columns[0]))
		assert.Equal(t, []int{1, 3, 5}, ids(columns[2]))
	})
}
