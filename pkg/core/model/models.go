package model

// Priority ranks how urgently a gap or finding needs attention
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
)

// Rank returns an ordinal for sorting; higher means more urgent
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// ConflictType identifies the kind of scheduling problem detected
type ConflictType string

const (
	ConflictTimeOverlap ConflictType = "TIME_OVERLAP"
	ConflictOverload    ConflictType = "OVERLOAD"
)

// ResolutionType identifies the kind of remedy suggested for a conflict
type ResolutionType string

const (
	ResolutionTimeShift       ResolutionType = "TIME_SHIFT"
	ResolutionReassign        ResolutionType = "REASSIGN"
	ResolutionFindReplacement ResolutionType = "FIND_REPLACEMENT"
)

// BurnoutRisk classifies how close a volunteer is to overcommitment
type BurnoutRisk string

const (
	BurnoutLow      BurnoutRisk = "LOW"
	BurnoutMedium   BurnoutRisk = "MEDIUM"
	BurnoutHigh     BurnoutRisk = "HIGH"
	BurnoutCritical BurnoutRisk = "CRITICAL"
)

// RecommendationType identifies a fleet-level corrective action
type RecommendationType string

const (
	RecommendRedistribute     RecommendationType = "REDISTRIBUTE"
	RecommendRestPeriod       RecommendationType = "REST_PERIOD"
	RecommendNewRecruitment   RecommendationType = "NEW_RECRUITMENT"
	RecommendSkillDevelopment RecommendationType = "SKILL_DEVELOPMENT"
)

// Gap represents a shortfall of volunteers for an event occurrence or a
// standing ministry slot. Gaps are recomputed on every request and carry no
// identity beyond their deterministic composite ID, so repeated calls are
// idempotent.
type Gap struct {
	ID                 string   `json:"id"`
	EventID            string   `json:"eventId,omitempty"`
	MinistryID         string   `json:"ministryId,omitempty"`
	Title              string   `json:"title"`
	Date               string   `json:"date"` // YYYY-MM-DD
	StartTime          string   `json:"startTime"`
	EndTime            string   `json:"endTime"`
	RequiredVolunteers int      `json:"requiredVolunteers"`
	CurrentVolunteers  int      `json:"currentVolunteers"`
	Priority           Priority `json:"priority"`
	UrgencyScore       int      `json:"urgencyScore"`
	RequiredSkills     []string `json:"requiredSkills,omitempty"`
	PreferredTags      []string `json:"preferredTags,omitempty"`
}

// Shortfall is the number of volunteers still needed
func (g Gap) Shortfall() int {
	return max(0, g.RequiredVolunteers-g.CurrentVolunteers)
}

// Match is a scored candidate-to-gap pairing. The four sub-scores feed the
// composite so a reviewer can audit why a candidate ranked where they did.
type Match struct {
	PersonID          string   `json:"personId"`
	PersonName        string   `json:"personName"`
	GapID             string   `json:"gapId"`
	CompositeScore    float64  `json:"compositeScore"`
	WorkloadScore     float64  `json:"workloadScore"`
	AvailabilityScore float64  `json:"availabilityScore"`
	SkillScore        float64  `json:"skillScore"`
	ExperienceBonus   float64  `json:"experienceBonus"`
	Priority          Priority `json:"priority"`
	Reasoning         []string `json:"reasoning"`
}

// Alternate is a ranked substitute volunteer proposed by a resolution
type Alternate struct {
	PersonID string `json:"personId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// TimeAdjustment describes a proposed change to an assignment's window
type TimeAdjustment struct {
	AssignmentID  string `json:"assignmentId"`
	OriginalStart string `json:"originalStart"`
	OriginalEnd   string `json:"originalEnd"`
	NewStart      string `json:"newStart"`
	NewEnd        string `json:"newEnd"`
}

// Resolution is a suggested remedy for a conflict
type Resolution struct {
	Type           ResolutionType  `json:"type"`
	Description    string          `json:"description"`
	Impact         string          `json:"impact"`
	Alternates     []Alternate     `json:"alternates,omitempty"`
	TimeAdjustment *TimeAdjustment `json:"timeAdjustment,omitempty"`
}

// Conflict is a detected scheduling problem for one person: either a time
// overlap between two specific assignments or a weekly overload.
type Conflict struct {
	ID                     string       `json:"id"`
	Type                   ConflictType `json:"type"`
	Severity               Priority     `json:"severity"`
	PersonID               string       `json:"personId"`
	ConflictingAssignments []string     `json:"conflictingAssignments"`
	OverlapMinutes         int          `json:"overlapMinutes,omitempty"`
	Description            string       `json:"description"`
	Resolutions            []Resolution `json:"resolutions"`
}

// AppliedResolution records an auto-applied remedy for a CRITICAL conflict
type AppliedResolution struct {
	ID          string         `json:"id"`
	ConflictID  string         `json:"conflictId"`
	Type        ResolutionType `json:"type"`
	Description string         `json:"description"`
	AuditNote   string         `json:"auditNote"`
}

// TimeWindow is one availability window in a person's weekly matrix
type TimeWindow struct {
	DayOfWeek  int    `json:"dayOfWeek"` // 0 = Sunday
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Preference string `json:"preference,omitempty"`
}

// WorkloadProfile summarises one person's assignment load and burnout risk
type WorkloadProfile struct {
	PersonID            string       `json:"personId"`
	PersonName          string       `json:"personName"`
	CurrentAssignments  int          `json:"currentAssignments"`
	WeeklyAssignments   int          `json:"weeklyAssignments"`
	MonthlyAssignments  int          `json:"monthlyAssignments"`
	WorkloadScore       int          `json:"workloadScore"`
	BurnoutRisk         BurnoutRisk  `json:"burnoutRisk"`
	AvailabilityWindows []TimeWindow `json:"availabilityWindows"`
	SkillsProfile       []string     `json:"skillsProfile"`
	LastCompletedDate   string       `json:"lastCompletedDate,omitempty"`
}

// BalancingRecommendation is fleet-level corrective advice
type BalancingRecommendation struct {
	Type           RecommendationType `json:"type"`
	Priority       Priority           `json:"priority"`
	Description    string             `json:"description"`
	AffectedPeople []string           `json:"affectedPeople"`
	ExpectedImpact string             `json:"expectedImpact"`
	ActionItems    []string           `json:"actionItems"`
}
