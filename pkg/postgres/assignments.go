package postgres

import (
	"context"
	"fmt"

	"github.com/kesterhols/volunteer-engine/pkg/db"
)

// GetAssignments retrieves assignment records for a tenant. The from and to
// bounds are inclusive dates in 2006-01-02 form; an empty string leaves that
// side of the range open.
func (d *DB) GetAssignments(ctx context.Context, tenantID, from, to string) ([]db.Assignment, error) {
	query := `
		SELECT id, person_id, event_id, title, date, start_time, end_time, status
		FROM assignment
		WHERE tenant_id = $1
	`
	args := []any{tenantID}

	if from != "" {
		args = append(args, from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != "" {
		args = append(args, to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date, start_time"

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var assignment db.Assignment
		if err := rows.Scan(
			&assignment.ID, &assignment.PersonID, &assignment.EventID,
			&assignment.Title, &assignment.Date, &assignment.StartTime,
			&assignment.EndTime, &assignment.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// UpdateAssignmentTime moves an assignment to a new start and end time and
// appends an audit note recording why it moved
func (d *DB) UpdateAssignmentTime(ctx context.Context, assignmentID, startTime, endTime, note string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE assignment
		SET start_time = $2,
			end_time = $3,
			notes = CASE WHEN notes = '' THEN $4 ELSE notes || E'\n' || $4 END,
			updated_at = NOW()
		WHERE id = $1
	`, assignmentID, startTime, endTime, note)
	if err != nil {
		return fmt.Errorf("failed to update assignment %s: %w", assignmentID, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("assignment %s not found", assignmentID)
	}

	return nil
}
