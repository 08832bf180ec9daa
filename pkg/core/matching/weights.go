package matching

// Scoring weights and thresholds for candidate-to-gap matching. Carried over
// verbatim from the production engine as tunable constants.
const (
	// Composite weighting of the four factors
	WorkloadWeight     = 0.30
	AvailabilityWeight = 0.30
	SkillWeight        = 0.25
	ExperienceWeight   = 0.15

	// Workload starts fully available and loses points per scheduled
	// assignment in the gap's week, plus a fatigue penalty once the
	// trailing-30-day count passes the threshold.
	WeeklyLoadPenalty = 15
	FatigueThreshold  = 8
	FatiguePenalty    = 5
	MaxScore          = 100

	// Availability: matrix hit on the gap's weekday vs the neutral default
	// used when no matrix exists.
	AvailabilityMatched = 90
	AvailabilityNeutral = 50

	// Skill: base credit plus a bonus per matching tag
	SkillBase     = 30
	SkillTagBonus = 15

	// ExperienceMultiplier converts a 1-10 experience level into the bonus
	ExperienceMultiplier = 3

	// MatchThreshold is the plausible-candidate floor; pairs scoring at or
	// below it are not emitted.
	MatchThreshold = 40

	// Priority bands on the composite score
	HighMatchScore   = 80
	MediumMatchScore = 60

	// DefaultTopN is how many matches are returned per gap by default
	DefaultTopN = 3
)
