package db

// Assignment status values
const (
	StatusRequested    = "REQUESTED"
	StatusConfirmed    = "CONFIRMED"
	StatusAutoAssigned = "AUTO_ASSIGNED"
	StatusCompleted    = "COMPLETED"
	StatusCancelled    = "CANCELLED"
)

// AvailabilityWindow is one window in a person's weekly availability matrix
type AvailabilityWindow struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Preferred bool   `json:"preferred"`
}

// Person represents an active member eligible to volunteer. Owned by the
// directory service; read-only to this engine.
type Person struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	Active          bool
	IsVolunteer     bool
	Skills          []string
	ExperienceLevel int // 1-10
	LeadershipScore int
	// Availability maps day-of-week (0 = Sunday) to windows.
	// Nil when the person has never filled in a matrix.
	Availability map[int][]AvailabilityWindow
}

// Name returns the person's display name
func (p Person) Name() string {
	return p.FirstName + " " + p.LastName
}

// Assignment binds one person to one task or event occurrence.
// Dates are YYYY-MM-DD, times are same-day HH:MM.
type Assignment struct {
	ID        string
	PersonID  string
	EventID   string // empty for standalone tasks
	Title     string
	Date      string
	StartTime string
	EndTime   string
	Status    string
}

// Event is an upcoming event occurrence from the catalog
type Event struct {
	ID            string
	Title         string
	Date          string
	StartTime     string
	EndTime       string
	Category      string
	AssignedCount int
}

// Ministry is a standing ministry from the catalog
type Ministry struct {
	ID                    string
	Name                  string
	ActiveVolunteerCount  int
	RecentAssignmentCount int
}
