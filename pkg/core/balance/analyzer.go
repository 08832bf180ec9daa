package balance

import (
	"sort"
	"time"

	"github.com/kesterhols/volunteer-engine/pkg/core/matching"
	"github.com/kesterhols/volunteer-engine/pkg/core/model"
	"github.com/kesterhols/volunteer-engine/pkg/db"
)

// AnalyzeWorkloads computes a WorkloadProfile for every volunteer from their
// assignment history and upcoming bookings, sorted by descending workload
// score. Profiles are recomputed from ground truth on every call.
func AnalyzeWorkloads(volunteers []matching.Candidate, now time.Time) []model.WorkloadProfile {
	profiles := make([]model.WorkloadProfile, 0, len(volunteers))
	for _, volunteer := range volunteers {
		profiles = append(profiles, profileFor(volunteer, now))
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].WorkloadScore > profiles[j].WorkloadScore
	})

	return profiles
}

func profileFor(volunteer matching.Candidate, now time.Time) model.WorkloadProfile {
	today := now.Format("2006-01-02")
	weekStart := now.AddDate(0, 0, -int(now.Weekday())).Format("2006-01-02")
	weekEnd := now.AddDate(0, 0, 6-int(now.Weekday())).Format("2006-01-02")
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	monthEnd := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Format("2006-01-02")

	current, weekly, monthly := 0, 0, 0
	lastCompleted := ""
	for _, a := range volunteer.Assignments {
		scheduled := a.Status == db.StatusRequested || a.Status == db.StatusConfirmed
		counted := scheduled || a.Status == db.StatusCompleted

		if scheduled && a.Date > today {
			current++
		}
		if counted && a.Date >= weekStart && a.Date <= weekEnd {
			weekly++
		}
		if counted && a.Date >= monthStart && a.Date <= monthEnd {
			monthly++
		}
		if a.Status == db.StatusCompleted && a.Date > lastCompleted {
			lastCompleted = a.Date
		}
	}

	score := min(current*CurrentLoadFactor, CurrentLoadCap) +
		min(weekly*WeeklyLoadFactor, WeeklyLoadCap) +
		min(monthly*MonthlyLoadFactor, MonthlyLoadCap)

	return model.WorkloadProfile{
		PersonID:            volunteer.Person.ID,
		PersonName:          volunteer.Person.Name(),
		CurrentAssignments:  current,
		WeeklyAssignments:   weekly,
		MonthlyAssignments:  monthly,
		WorkloadScore:       score,
		BurnoutRisk:         burnoutRisk(score, monthly),
		AvailabilityWindows: availabilityWindows(volunteer.Person),
		SkillsProfile:       volunteer.Person.Skills,
		LastCompletedDate:   lastCompleted,
	}
}

func burnoutRisk(score, monthly int) model.BurnoutRisk {
	switch {
	case score > CriticalScore || monthly > CriticalMonthly:
		return model.BurnoutCritical
	case score > HighScore || monthly > HighMonthly:
		return model.BurnoutHigh
	case score > MediumScore || monthly > MediumMonthly:
		return model.BurnoutMedium
	}
	return model.BurnoutLow
}

func availabilityWindows(person db.Person) []model.TimeWindow {
	windows := []model.TimeWindow{}
	for day := 0; day < 7; day++ {
		for _, w := range person.Availability[day] {
			preference := "AVAILABLE"
			if w.Preferred {
				preference = "PREFERRED"
			}
			windows = append(windows, model.TimeWindow{
				DayOfWeek:  day,
				StartTime:  w.StartTime,
				EndTime:    w.EndTime,
				Preference: preference,
			})
		}
	}
	return windows
}
