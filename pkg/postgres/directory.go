package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kesterhols/volunteer-engine/pkg/db"
)

// GetActivePeople retrieves all active people for a tenant, volunteers or not
func (d *DB) GetActivePeople(ctx context.Context, tenantID string) ([]db.Person, error) {
	return d.queryPeople(ctx, `
		SELECT id, first_name, last_name, email, active, is_volunteer,
			skills, experience_level, leadership_score, availability
		FROM person
		WHERE tenant_id = $1 AND active = true
	`, tenantID)
}

// GetActiveVolunteers retrieves the active people flagged as volunteers
func (d *DB) GetActiveVolunteers(ctx context.Context, tenantID string) ([]db.Person, error) {
	return d.queryPeople(ctx, `
		SELECT id, first_name, last_name, email, active, is_volunteer,
			skills, experience_level, leadership_score, availability
		FROM person
		WHERE tenant_id = $1 AND active = true AND is_volunteer = true
	`, tenantID)
}

func (d *DB) queryPeople(ctx context.Context, query string, args ...any) ([]db.Person, error) {
	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	var people []db.Person
	for rows.Next() {
		var person db.Person
		var availabilityJSON []byte
		if err := rows.Scan(
			&person.ID, &person.FirstName, &person.LastName, &person.Email,
			&person.Active, &person.IsVolunteer, &person.Skills,
			&person.ExperienceLevel, &person.LeadershipScore, &availabilityJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}

		if len(availabilityJSON) > 0 {
			availability, err := parseAvailability(availabilityJSON)
			if err != nil {
				return nil, fmt.Errorf("failed to parse availability for person %s: %w", person.ID, err)
			}
			person.Availability = availability
		}

		people = append(people, person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating people: %w", err)
	}

	return people, nil
}

// parseAvailability decodes the availability JSON column. Keys are day-of-week
// numbers (0=Sunday through 6=Saturday) stored as JSON object keys.
func parseAvailability(data []byte) (map[int][]db.AvailabilityWindow, error) {
	var raw map[string][]db.AvailabilityWindow
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	availability := make(map[int][]db.AvailabilityWindow, len(raw))
	for key, windows := range raw {
		day, err := strconv.Atoi(key)
		if err != nil || day < 0 || day > 6 {
			return nil, fmt.Errorf("invalid day-of-week key %q", key)
		}
		availability[day] = windows
	}

	return availability, nil
}
