package conflicts

// Severity thresholds and alternate-search constraints, carried over from the
// production engine.
const (
	// Overlap severity by overlapping minutes
	OverlapCriticalMinutes = 60
	OverlapHighMinutes     = 30

	// Weekly overload: more than WeeklyOverloadThreshold assignments in one
	// Sunday-start week is a conflict, more than WeeklyCriticalThreshold is
	// critical.
	WeeklyOverloadThreshold = 4
	WeeklyCriticalThreshold = 6

	// Constrained alternate search: candidates carrying more than
	// AlternateMaxLoad scheduled assignments are not considered, and at most
	// MaxAlternates are proposed.
	AlternateMaxLoad = 3
	MaxAlternates    = 3

	// Alternate suitability: availability decays with load, experience adds
	// a flat bonus per level, and the two average into the score.
	AlternateLoadPenalty    = 20
	AlternateExperienceGain = 10
)
