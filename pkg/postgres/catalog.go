package postgres

import (
	"context"
	"fmt"

	"github.com/kesterhols/volunteer-engine/pkg/db"
)

// GetUpcomingEvents retrieves events dated within the window along with how
// many scheduled assignments each already has. Bounds are inclusive dates in
// 2006-01-02 form.
func (d *DB) GetUpcomingEvents(ctx context.Context, tenantID, from, to string) ([]db.Event, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT e.id, e.title, e.date, e.start_time, e.end_time, e.category,
			COUNT(a.id) FILTER (WHERE a.status IN ('REQUESTED', 'CONFIRMED', 'AUTO_ASSIGNED'))
		FROM event e
		LEFT JOIN assignment a ON a.event_id = e.id
		WHERE e.tenant_id = $1 AND e.date >= $2 AND e.date <= $3
		GROUP BY e.id, e.title, e.date, e.start_time, e.end_time, e.category
		ORDER BY e.date, e.start_time
	`, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming events: %w", err)
	}
	defer rows.Close()

	var events []db.Event
	for rows.Next() {
		var event db.Event
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Date, &event.StartTime,
			&event.EndTime, &event.Category, &event.AssignedCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// GetMinistries retrieves each ministry with its active membership count and
// how many assignments its members took on in the last thirty days
func (d *DB) GetMinistries(ctx context.Context, tenantID string) ([]db.Ministry, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT m.id, m.name,
			COUNT(DISTINCT mm.person_id) FILTER (WHERE p.active AND p.is_volunteer),
			COUNT(a.id) FILTER (WHERE a.date >= TO_CHAR(NOW() - INTERVAL '30 days', 'YYYY-MM-DD'))
		FROM ministry m
		LEFT JOIN ministry_member mm ON mm.ministry_id = m.id
		LEFT JOIN person p ON p.id = mm.person_id
		LEFT JOIN assignment a ON a.person_id = mm.person_id
		WHERE m.tenant_id = $1
		GROUP BY m.id, m.name
		ORDER BY m.name
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ministries: %w", err)
	}
	defer rows.Close()

	var ministries []db.Ministry
	for rows.Next() {
		var ministry db.Ministry
		if err := rows.Scan(
			&ministry.ID, &ministry.Name,
			&ministry.ActiveVolunteerCount, &ministry.RecentAssignmentCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ministry: %w", err)
		}
		ministries = append(ministries, ministry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ministries: %w", err)
	}

	return ministries, nil
}
