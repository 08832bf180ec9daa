package gaps

// Staffing heuristics for gap identification. Tunable constants carried over
// from the production scheduling engine; not asserted to be optimal.
const (
	// StaffingBuffer is the over-provisioning factor applied to the current
	// assigned count when estimating how many volunteers an event needs.
	StaffingBuffer = 1.2

	// MinEventRequired is the floor on required volunteers per event, which
	// also guarantees the coverage ratio never divides by zero.
	MinEventRequired = 2

	// Coverage ratio thresholds for event priority tiering
	CriticalCoverageRatio = 0.5
	HighCoverageRatio     = 0.7
	MediumCoverageRatio   = 0.8

	// Urgency scores per event priority tier
	UrgencyCritical = 90
	UrgencyHigh     = 70
	UrgencyMedium   = 50
	UrgencyLow      = 10

	// MinistryMinActive flags a ministry when its active volunteer count
	// falls below this.
	MinistryMinActive = 3

	// MinistryMinAvgAssignments flags a ministry when average assignments
	// per volunteer falls below this.
	MinistryMinAvgAssignments = 1.0

	// MinMinistryRequired is the floor on required volunteers per ministry
	MinMinistryRequired = 3

	// MinistryGrowthFactor scales the active count when estimating how many
	// volunteers a flagged ministry should recruit to.
	MinistryGrowthFactor = 1.5

	// Ministry urgency: an empty ministry is maximally urgent, otherwise
	// urgency decays with each active volunteer.
	MinistryUrgencyEmpty        = 95
	MinistryUrgencyBase         = 60
	MinistryUrgencyPerVolunteer = 10

	// DefaultEventDurationMinutes is assumed when an event has no end time
	DefaultEventDurationMinutes = 120
)
