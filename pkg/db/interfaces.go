package db

import "context"

// Directory provides read-only access to the roster of people eligible to
// volunteer
type Directory interface {
	// GetActivePeople returns every active person for the tenant
	GetActivePeople(ctx context.Context, tenantID string) ([]Person, error)
	// GetActiveVolunteers returns active people holding at least one
	// volunteer role
	GetActiveVolunteers(ctx context.Context, tenantID string) ([]Person, error)
}

// AssignmentStore provides access to the volunteer assignment log.
// Reads are snapshots; the single write path is the narrow time update used
// by auto-resolve.
type AssignmentStore interface {
	// GetAssignments returns assignments dated within [from, to] inclusive.
	// Either bound may be empty to leave that side open.
	GetAssignments(ctx context.Context, tenantID, from, to string) ([]Assignment, error)
	// UpdateAssignmentTime rewrites one assignment's window and appends an
	// audit note. Must be atomic per assignment.
	UpdateAssignmentTime(ctx context.Context, assignmentID, startTime, endTime, note string) error
}

// Catalog provides read-only event and ministry metadata
type Catalog interface {
	GetUpcomingEvents(ctx context.Context, tenantID, from, to string) ([]Event, error)
	GetMinistries(ctx context.Context, tenantID string) ([]Ministry, error)
}

// Database combines the collaborator interfaces the engine reads from.
// The postgres package implements all of them.
type Database interface {
	Directory
	AssignmentStore
	Catalog
}

// Notifier is the fire-and-forget channel used to announce gap alerts.
// Send failures are logged by callers, never propagated.
type Notifier interface {
	SendAlert(to, subject, body string) error
}
