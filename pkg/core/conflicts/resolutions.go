package conflicts

import (
	"fmt"
	"sort"
	"time"

	"github.com/kesterhols/volunteer-engine/pkg/core/matching"
	"github.com/kesterhols/volunteer-engine/pkg/core/model"
	"github.com/kesterhols/volunteer-engine/pkg/db"
	"github.com/kesterhols/volunteer-engine/pkg/timeutil"
)

// overlapResolutions proposes remedies for a pair of overlapping
// assignments: a TIME_SHIFT moving the shorter one to start when the other
// ends, then REASSIGN alternates for whichever assignment has viable
// substitutes.
func overlapResolutions(person db.Person, first, second db.Assignment, roster []matching.Candidate) []model.Resolution {
	var resolutions []model.Resolution

	if shift := timeShift(first, second); shift != nil {
		resolutions = append(resolutions, *shift)
	}

	for _, target := range []db.Assignment{first, second} {
		alternates := findAlternates([]db.Assignment{target}, roster, person.ID)
		if len(alternates) == 0 {
			continue
		}
		resolutions = append(resolutions, model.Resolution{
			Type:        model.ResolutionReassign,
			Description: fmt.Sprintf("Reassign %q to another volunteer", target.Title),
			Impact:      "Resolves the conflict and spreads the workload",
			Alternates:  alternates,
		})
	}

	return resolutions
}

// timeShift picks the shorter assignment and proposes placing it
// sequentially after the other one, preserving its duration
func timeShift(first, second db.Assignment) *model.Resolution {
	start1, err := timeutil.ToMinutes(first.StartTime)
	if err != nil {
		return nil
	}
	end1, err := timeutil.ToMinutes(first.EndTime)
	if err != nil {
		return nil
	}
	start2, err := timeutil.ToMinutes(second.StartTime)
	if err != nil {
		return nil
	}
	end2, err := timeutil.ToMinutes(second.EndTime)
	if err != nil {
		return nil
	}

	shifted, anchorEnd := first, end2
	duration := end1 - start1
	if end2-start2 < duration {
		shifted, anchorEnd = second, end1
		duration = end2 - start2
	}

	newStart := anchorEnd
	newEnd := newStart + duration
	if newEnd >= 24*60 {
		// No room left in the day for a sequential placement
		return nil
	}

	return &model.Resolution{
		Type: model.ResolutionTimeShift,
		Description: fmt.Sprintf("Move %q to %s-%s",
			shifted.Title, timeutil.FromMinutes(newStart), timeutil.FromMinutes(newEnd)),
		Impact: "Removes the overlap while keeping both assignments",
		TimeAdjustment: &model.TimeAdjustment{
			AssignmentID:  shifted.ID,
			OriginalStart: shifted.StartTime,
			OriginalEnd:   shifted.EndTime,
			NewStart:      timeutil.FromMinutes(newStart),
			NewEnd:        timeutil.FromMinutes(newEnd),
		},
	}
}

// findAlternates runs the constrained candidate search: active volunteers
// with light scheduled load and no interval conflict with any target
// assignment, ranked by a load-and-experience suitability score.
func findAlternates(targets []db.Assignment, roster []matching.Candidate, excludePersonID string) []model.Alternate {
	var alternates []model.Alternate

	for _, candidate := range roster {
		if candidate.Person.ID == excludePersonID {
			continue
		}

		load := scheduledLoad(candidate.Assignments)
		if load > AlternateMaxLoad {
			continue
		}

		if conflictsWithAny(candidate.Assignments, targets) {
			continue
		}

		level := candidate.Person.ExperienceLevel
		if level < 1 {
			level = 1
		}
		availability := 100 - load*AlternateLoadPenalty
		experience := level * AlternateExperienceGain
		score := (availability + experience) / 2

		alternates = append(alternates, model.Alternate{
			PersonID: candidate.Person.ID,
			Name:     candidate.Person.Name(),
			Score:    score,
		})
	}

	sort.SliceStable(alternates, func(i, j int) bool {
		return alternates[i].Score > alternates[j].Score
	})
	if len(alternates) > MaxAlternates {
		alternates = alternates[:MaxAlternates]
	}

	return alternates
}

func scheduledLoad(assignments []db.Assignment) int {
	load := 0
	for _, a := range assignments {
		if a.Status == db.StatusRequested || a.Status == db.StatusConfirmed {
			load++
		}
	}
	return load
}

// conflictsWithAny reports whether the candidate is already booked during
// any target assignment's window
func conflictsWithAny(assignments []db.Assignment, targets []db.Assignment) bool {
	for _, target := range targets {
		targetStart, err := timeutil.ToMinutes(target.StartTime)
		if err != nil {
			continue
		}
		targetEnd, err := timeutil.ToMinutes(target.EndTime)
		if err != nil {
			continue
		}
		for _, a := range assignments {
			if a.Date != target.Date {
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
			if timeutil.Overlaps(targetStart, targetEnd, aStart, aEnd) {
				return true
			}
		}
	}
	return false
}

// weekKey returns the Sunday that starts the date's week, as YYYY-MM-DD
func weekKey(date string) (string, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", err
	}
	return parsed.AddDate(0, 0, -int(parsed.Weekday())).Format("2006-01-02"), nil
}
