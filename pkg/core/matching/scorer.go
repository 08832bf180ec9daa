package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/kesterhols/volunteer-engine/pkg/core/model"
	"github.com/kesterhols/volunteer-engine/pkg/db"
	"github.com/kesterhols/volunteer-engine/pkg/timeutil"
)

// Candidate pairs a person with their open and near-term assignments
type Candidate struct {
	Person      db.Person
	Assignments []db.Assignment
}

// ScoreGap evaluates every candidate against the gap and returns the ranked
// matches, best first, capped at topN. A candidate with an assignment that
// overlaps the gap's window is excluded outright, not penalised. Candidates
// missing optional profile data fall back to the documented neutral
// defaults rather than erroring.
func ScoreGap(gap model.Gap, candidates []Candidate, topN int) ([]model.Match, error) {
	gapDate, err := time.Parse("2006-01-02", gap.Date)
	if err != nil {
		return nil, &model.InputError{Field: "gap date", Msg: fmt.Sprintf("gap %s: %v", gap.ID, err)}
	}
	gapStart, err := timeutil.ToMinutes(gap.StartTime)
	if err != nil {
		return nil, err
	}
	gapEnd, err := timeutil.ToMinutes(gap.EndTime)
	if err != nil {
		return nil, err
	}

	if topN <= 0 {
		topN = DefaultTopN
	}

	wantedTags := normalizeTags(append(append([]string{}, gap.RequiredSkills...), gap.PreferredTags...))

	matches := make([]model.Match, 0, len(candidates))
	for _, candidate := range candidates {
		// Hard exclusion: already booked during the gap's window
		if hasOverlap(candidate.Assignments, gap.Date, gapStart, gapEnd) {
			continue
		}

		workload := workloadScore(candidate.Assignments, gapDate)
		availability := availabilityScore(candidate.Person, gapDate)
		skill := skillScore(candidate.Person, wantedTags)
		experience := experienceBonus(candidate.Person)

		composite := math.Min(MaxScore,
			workload*WorkloadWeight+
				availability*AvailabilityWeight+
				skill*SkillWeight+
				experience*ExperienceWeight)

		if composite <= MatchThreshold {
			continue
		}

		matches = append(matches, model.Match{
			PersonID:          candidate.Person.ID,
			PersonName:        candidate.Person.Name(),
			GapID:             gap.ID,
			CompositeScore:    composite,
			WorkloadScore:     workload,
			AvailabilityScore: availability,
			SkillScore:        skill,
			ExperienceBonus:   experience,
			Priority:          matchPriority(composite),
			Reasoning:         reasoning(candidate.Person, workload, availability, skill),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CompositeScore > matches[j].CompositeScore
	})

	if len(matches) > topN {
		matches = matches[:topN]
	}

	return matches, nil
}

// hasOverlap reports whether any scheduled assignment intersects the window.
// Assignments with unparseable times are ignored rather than blocking the
// candidate.
func hasOverlap(assignments []db.Assignment, date string, start, end int) bool {
	for _, a := range assignments {
		if a.Date != date {
			continue
		}
		if a.Status != db.StatusRequested && a.Status != db.StatusConfirmed {
			continue
		}
		aStart, err := timeutil.ToMinutes(a.StartTime)
		if err != nil {
			continue
		}
		aEnd, err := timeutil.ToMinutes(a.EndTime)
		if err != nil {
			continue
		}
		if timeutil.Overlaps(start, end, aStart, aEnd) {
			return true
		}
	}
	return false
}

// workloadScore starts at full availability and subtracts for assignments in
// the gap's calendar week, plus a fatigue penalty for heavy trailing-30-day
// load. Clamped to [0, 100].
func workloadScore(assignments []db.Assignment, gapDate time.Time) float64 {
	weekStart := startOfWeek(gapDate)
	weekEnd := weekStart.AddDate(0, 0, 6)
	monthStart := gapDate.AddDate(0, 0, -30)

	weekly := 0
	monthly := 0
	for _, a := range assignments {
		date, err := time.Parse("2006-01-02", a.Date)
		if err != nil {
			continue
		}
		scheduled := a.Status == db.StatusRequested || a.Status == db.StatusConfirmed
		if scheduled && !date.Before(weekStart) && !date.After(weekEnd) {
			weekly++
		}
		if (scheduled || a.Status == db.StatusCompleted) && !date.Before(monthStart) {
			monthly++
		}
	}

	score := float64(MaxScore - weekly*WeeklyLoadPenalty)
	if monthly > FatigueThreshold {
		score -= float64((monthly - FatigueThreshold) * FatiguePenalty)
	}

	return math.Max(0, math.Min(MaxScore, score))
}

// availabilityScore checks the person's weekly matrix for the gap's weekday.
// No matrix means the neutral default, never an exclusion.
func availabilityScore(person db.Person, gapDate time.Time) float64 {
	if person.Availability == nil {
		return AvailabilityNeutral
	}
	if windows := person.Availability[int(gapDate.Weekday())]; len(windows) > 0 {
		return AvailabilityMatched
	}
	return AvailabilityNeutral
}

func skillScore(person db.Person, wantedTags map[string]bool) float64 {
	score := float64(SkillBase)
	for _, skill := range person.Skills {
		if wantedTags[strings.ToLower(skill)] {
			score += SkillTagBonus
		}
	}
	return score
}

func experienceBonus(person db.Person) float64 {
	return float64(experienceLevel(person) * ExperienceMultiplier)
}

// experienceLevel defaults to 1 for people with no recorded level
func experienceLevel(person db.Person) int {
	if person.ExperienceLevel < 1 {
		return 1
	}
	return person.ExperienceLevel
}

func matchPriority(composite float64) model.Priority {
	switch {
	case composite > HighMatchScore:
		return model.PriorityHigh
	case composite > MediumMatchScore:
		return model.PriorityMedium
	}
	return model.PriorityLow
}

// reasoning renders the four sub-scores verbatim so the ranking stays
// auditable by a human reviewer
func reasoning(person db.Person, workload, availability, skill float64) []string {
	return []string{
		fmt.Sprintf("Availability score: %.0f/100", availability),
		fmt.Sprintf("Current workload: %.0f%% busy", MaxScore-workload),
		fmt.Sprintf("Skill compatibility: %.0f/100", skill),
		fmt.Sprintf("Experience level: %d/10", experienceLevel(person)),
	}
}

// startOfWeek returns the Sunday that begins the date's week
func startOfWeek(date time.Time) time.Time {
	return date.AddDate(0, 0, -int(date.Weekday()))
}

func normalizeTags(tags []string) map[string]bool {
	normalized := make(map[string]bool, len(tags))
	for _, tag := range tags {
		normalized[strings.ToLower(tag)] = true
	}
	return normalized
}
