package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/sprintboard/internal/models"
)

// CascadeSpec names a parent row and the foreign key that references it.
// CascadeDelete clears DependentTable.ForeignKey wherever it equals TargetID,
// then removes the TargetTable row.
type CascadeSpec struct {
	DependentTable string
	ForeignKey     string
	TargetTable    string
	TargetID       int
}

// EpicCascade clears tickets.epic_id before deleting the epic
func EpicCascade(epicID int) CascadeSpec {
	return CascadeSpec{DependentTable: "tickets", ForeignKey: "epic_id", TargetTable: "epics", TargetID: epicID}
}

// SprintCascade clears tickets.sprint_id before deleting the sprint
func SprintCascade(sprintID int) CascadeSpec {
	return CascadeSpec{DependentTable: "tickets", ForeignKey: "sprint_id", TargetTable: "sprints", TargetID: sprintID}
}

// cascadeAllowed lists the (dependent.fk -> target) pairs that may be
// interpolated into SQL.
var cascadeAllowed = map[string]string{
	"tickets.epic_id":   "epics",
	"tickets.sprint_id": "sprints",
}

func (s CascadeSpec) validate() error {
	target, ok := cascadeAllowed[s.DependentTable+"."+s.ForeignKey]
	if !ok || target != s.TargetTable {
		return fmt.Errorf("unsupported cascade %s.%s -> %s", s.DependentTable, s.ForeignKey, s.TargetTable)
	}
	return nil
}

// CascadeDelete clears every reference to the target and deletes it in one
// transaction. A missing target is not an error: Deleted is false.
func (r *Repository) CascadeDelete(ctx context.Context, spec CascadeSpec) (*models.CascadeResult, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	result := &models.CascadeResult{}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		cleared, err := tx.ExecContext(ctx,
			fmt.Sprintf(`UPDATE %s SET %s = NULL WHERE %s = ?`, spec.DependentTable, spec.ForeignKey, spec.ForeignKey),
			spec.TargetID,
		)
		if err != nil {
			return fmt.Errorf("failed to clear %s.%s: %w", spec.DependentTable, spec.ForeignKey, err)
		}
		affected, err := cleared.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to count cleared references: %w", err)
		}

		deleted, err := tx.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, spec.TargetTable),
			spec.TargetID,
		)
		if err != nil {
			return fmt.Errorf("failed to delete from %s: %w", spec.TargetTable, err)
		}
		removed, err := deleted.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to count deleted rows: %w", err)
		}

		result.AffectedTickets = int(affected)
		result.Deleted = removed > 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
