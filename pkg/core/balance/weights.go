package balance

// Workload scoring and recommendation thresholds, carried over from the
// production engine. The three score contributions are independently capped
// so the total never exceeds 100.
const (
	CurrentLoadFactor = 12
	CurrentLoadCap    = 60
	WeeklyLoadFactor  = 8
	WeeklyLoadCap     = 24
	MonthlyLoadFactor = 2
	MonthlyLoadCap    = 16

	// Burnout tiers trip on either the composite score or the raw monthly
	// count, whichever crosses first.
	CriticalScore   = 80
	CriticalMonthly = 12
	HighScore       = 60
	HighMonthly     = 8
	MediumScore     = 40
	MediumMonthly   = 4

	// A person is underutilized with no current assignments or fewer than
	// this many monthly ones.
	UnderutilizedMonthly = 2

	// RecruitmentThreshold: more underutilized people than this triggers an
	// activation recommendation.
	RecruitmentThreshold = 3

	// RareSkillCount: a skill held by fewer people than this fleet-wide is
	// scarce.
	RareSkillCount = 2

	// Rest periods: heavy monthly load plus a completion this recent
	RestMonthlyThreshold = 6
	RestRecentDays       = 7

	// Redistribution pairing limits
	TopOverloaded        = 3
	AlternatesPerPairing = 2
)
