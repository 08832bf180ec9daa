package conflicts

import (
	"fmt"
	"sort"

	"github.com/kesterhols/volunteer-engine/pkg/core/matching"
	"github.com/kesterhols/volunteer-engine/pkg/core/model"
	"github.com/kesterhols/volunteer-engine/pkg/db"
	"github.com/kesterhols/volunteer-engine/pkg/timeutil"
)

// DetectPerson scans one person's upcoming assignments for pairwise time
// overlaps and weekly overload, returning one Conflict per finding. The
// roster supplies candidates for the constrained alternate search used in
// resolutions; it may include the person themselves, who is skipped.
//
// Conflicts are stateless findings: nothing here mutates assignment state.
func DetectPerson(person db.Person, assignments []db.Assignment, roster []matching.Candidate) []model.Conflict {
	scheduled := scheduledOnly(assignments)
	sort.SliceStable(scheduled, func(i, j int) bool {
		if scheduled[i].Date != scheduled[j].Date {
			return scheduled[i].Date < scheduled[j].Date
		}
		return scheduled[i].StartTime < scheduled[j].StartTime
	})

	conflicts := overlapConflicts(person, scheduled, roster)
	conflicts = append(conflicts, overloadConflicts(person, scheduled, roster)...)
	return conflicts
}

// scheduledOnly keeps the statuses that can actually collide
func scheduledOnly(assignments []db.Assignment) []db.Assignment {
	kept := make([]db.Assignment, 0, len(assignments))
	for _, a := range assignments {
		switch a.Status {
		case db.StatusRequested, db.StatusConfirmed, db.StatusAutoAssigned:
			kept = append(kept, a)
		}
	}
	return kept
}

// overlapConflicts checks every unordered pair of same-day assignments
func overlapConflicts(person db.Person, assignments []db.Assignment, roster []matching.Candidate) []model.Conflict {
	var conflicts []model.Conflict

	for i := 0; i < len(assignments); i++ {
		for j := i + 1; j < len(assignments); j++ {
			first, second := assignments[i], assignments[j]
			if first.Date != second.Date {
				continue
			}

			overlap, ok := overlapBetween(first, second)
			if !ok || overlap <= 0 {
				continue
			}

			severity := model.PriorityMedium
			switch {
			case overlap > OverlapCriticalMinutes:
				severity = model.PriorityCritical
			case overlap > OverlapHighMinutes:
				severity = model.PriorityHigh
			}

			conflicts = append(conflicts, model.Conflict{
				ID:                     fmt.Sprintf("overlap-%s-%s", first.ID, second.ID),
				Type:                   model.ConflictTimeOverlap,
				Severity:               severity,
				PersonID:               person.ID,
				ConflictingAssignments: []string{first.ID, second.ID},
				OverlapMinutes:         overlap,
				Description: fmt.Sprintf("Time overlap: %q (%s-%s) overlaps %q (%s-%s) by %d minutes",
					first.Title, first.StartTime, first.EndTime,
					second.Title, second.StartTime, second.EndTime, overlap),
				Resolutions: overlapResolutions(person, first, second, roster),
			})
		}
	}

	return conflicts
}

// overlapBetween returns the overlap minutes of two same-day assignments.
// Pairs with unparseable times are skipped rather than failing the scan.
func overlapBetween(first, second db.Assignment) (int, bool) {
	start1, err := timeutil.ToMinutes(first.StartTime)
	if err != nil {
		return 0, false
	}
	end1, err := timeutil.ToMinutes(first.EndTime)
	if err != nil {
		return 0, false
	}
	start2, err := timeutil.ToMinutes(second.StartTime)
	if err != nil {
		return 0, false
	}
	end2, err := timeutil.ToMinutes(second.EndTime)
	if err != nil {
		return 0, false
	}
	return timeutil.OverlapMinutes(start1, end1, start2, end2), true
}

// overloadConflicts groups assignments into Sunday-start weeks and flags the
// heavy ones
func overloadConflicts(person db.Person, assignments []db.Assignment, roster []matching.Candidate) []model.Conflict {
	weeks := make(map[string][]db.Assignment)
	var weekKeys []string
	for _, a := range assignments {
		key, err := weekKey(a.Date)
		if err != nil {
			continue
		}
		if _, seen := weeks[key]; !seen {
			weekKeys = append(weekKeys, key)
		}
		weeks[key] = append(weeks[key], a)
	}
	sort.Strings(weekKeys)

	var conflicts []model.Conflict
	for _, key := range weekKeys {
		weekAssignments := weeks[key]
		if len(weekAssignments) <= WeeklyOverloadThreshold {
			continue
		}

		severity := model.PriorityHigh
		if len(weekAssignments) > WeeklyCriticalThreshold {
			severity = model.PriorityCritical
		}

		ids := make([]string, len(weekAssignments))
		for i, a := range weekAssignments {
			ids[i] = a.ID
		}

		conflicts = append(conflicts, model.Conflict{
			ID:                     fmt.Sprintf("overload-%s-%s", person.ID, key),
			Type:                   model.ConflictOverload,
			Severity:               severity,
			PersonID:               person.ID,
			ConflictingAssignments: ids,
			Description: fmt.Sprintf("Overload: %d assignments in the week of %s",
				len(weekAssignments), key),
			Resolutions: []model.Resolution{{
				Type:        model.ResolutionFindReplacement,
				Description: "Find alternate volunteers for some assignments",
				Impact:      "Reduces the weekly load to a sustainable level",
				Alternates:  findAlternates(weekAssignments, roster, person.ID),
			}},
		})
	}

	return conflicts
}
