package board

import "github.com/thenoetrevino/sprintboard/internal/models"

// PartitionByColumn groups tickets into the three board columns in workflow
// order. Legacy spellings land with their canonical status, and tickets keep
// their relative order within a column.
func PartitionByColumn(tickets []*models.Ticket) []*models.Column {
	columns := make([]*models.Column, len(models.Statuses))
	for i, status := range models.Statuses {
		columns[i] = &models.Column{
			Status:  status,
			Title:   status.Title(),
			Tickets: []*models.Ticket{},
		}
	}

	for _, t := range tickets {
		idx := models.NormalizeStatus(string(t.Status)).Index()
		columns[idx].Tickets = append(columns[idx].Tickets, t)
	}
	return columns
}
