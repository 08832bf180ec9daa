package balance

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kesterhols/volunteer-engine/pkg/core/model"
)

// Recommend synthesizes fleet-level balancing advice from the workload
// profiles. The result is sorted by priority, HIGH first; rest-period advice
// outranks every other recommendation type at equal priority.
func Recommend(profiles []model.WorkloadProfile, now time.Time) []model.BalancingRecommendation {
	var recommendations []model.BalancingRecommendation

	overloaded := filterProfiles(profiles, func(p model.WorkloadProfile) bool {
		return p.BurnoutRisk == model.BurnoutCritical || p.BurnoutRisk == model.BurnoutHigh
	})
	underutilized := filterProfiles(profiles, func(p model.WorkloadProfile) bool {
		return p.CurrentAssignments == 0 || p.MonthlyAssignments < UnderutilizedMonthly
	})

	if len(overloaded) > 0 {
		recommendations = append(recommendations, model.BalancingRecommendation{
			Type:           model.RecommendRedistribute,
			Priority:       model.PriorityHigh,
			Description:    fmt.Sprintf("%d volunteers are overloaded and need load relief", len(overloaded)),
			AffectedPeople: personIDs(overloaded),
			ExpectedImpact: "Reduces burnout and improves volunteer retention",
			ActionItems: []string{
				"Reassign some responsibilities to less busy volunteers",
				"Rotate roles to spread the load",
				"Split large assignments into smaller tasks",
				"Schedule rest periods for the heaviest contributors",
			},
		})

		recommendations = append(recommendations, pairings(overloaded, underutilized)...)
	}

	if len(underutilized) > RecruitmentThreshold {
		recommendations = append(recommendations, model.BalancingRecommendation{
			Type:           model.RecommendNewRecruitment,
			Priority:       model.PriorityMedium,
			Description:    fmt.Sprintf("%d volunteers are underutilized and can take on more", len(underutilized)),
			AffectedPeople: personIDs(underutilized),
			ExpectedImpact: "Raises participation and spreads the workload more evenly",
			ActionItems: []string{
				"Run one-to-one conversations about availability and interests",
				"Offer training in high-demand areas",
				"Create flexible roles for different commitment levels",
				"Pair new volunteers with mentors",
			},
		})
	}

	if scarce := scarceSkills(profiles); len(scarce) > 0 {
		affected := underutilized
		if len(affected) > 5 {
			affected = affected[:5]
		}
		recommendations = append(recommendations, model.BalancingRecommendation{
			Type:           model.RecommendSkillDevelopment,
			Priority:       model.PriorityLow,
			Description:    "Develop capacity in scarce skills: " + strings.Join(scarce, ", "),
			AffectedPeople: personIDs(affected),
			ExpectedImpact: "Builds redundancy in critical skills and reduces reliance on a few people",
			ActionItems: []string{
				"Organise workshops on the identified skills",
				"Set up a leadership development track",
				"Establish mentoring for knowledge transfer",
			},
		})
	}

	if resting := needingRest(profiles, now); len(resting) > 0 {
		recommendations = append(recommendations, model.BalancingRecommendation{
			Type:           model.RecommendRestPeriod,
			Priority:       model.PriorityHigh,
			Description:    fmt.Sprintf("%d volunteers need a scheduled rest period", len(resting)),
			AffectedPeople: personIDs(resting),
			ExpectedImpact: "Prevents burnout and keeps morale high",
			ActionItems: []string{
				"Schedule rotating breaks for the most active volunteers",
				"Line up temporary replacements",
				"Recognise and thank exceptional service",
			},
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendationRank(recommendations[i]) > recommendationRank(recommendations[j])
	})

	return recommendations
}

// pairings matches the most overloaded people with underutilized volunteers
// who share at least one skill tag. An underutilized person with no recorded
// skills also qualifies: willingness substitutes for matching skill.
func pairings(overloaded, underutilized []model.WorkloadProfile) []model.BalancingRecommendation {
	var recommendations []model.BalancingRecommendation

	top := overloaded
	if len(top) > TopOverloaded {
		top = top[:TopOverloaded]
	}

	for _, heavy := range top {
		var alternates []model.WorkloadProfile
		for _, light := range underutilized {
			if len(alternates) == AlternatesPerPairing {
				break
			}
			if len(light.SkillsProfile) == 0 || sharesSkill(heavy.SkillsProfile, light.SkillsProfile) {
				alternates = append(alternates, light)
			}
		}
		if len(alternates) == 0 {
			continue
		}

		names := make([]string, len(alternates))
		for i, alt := range alternates {
			names[i] = alt.PersonName
		}

		recommendations = append(recommendations, model.BalancingRecommendation{
			Type:           model.RecommendRedistribute,
			Priority:       model.PriorityMedium,
			Description:    fmt.Sprintf("Redistribute load from %s to available volunteers", heavy.PersonName),
			AffectedPeople: append([]string{heavy.PersonID}, personIDs(alternates)...),
			ExpectedImpact: fmt.Sprintf("Reduce %s's load by 30-40%%", heavy.PersonName),
			ActionItems: []string{
				"Contact " + strings.Join(names, " and ") + " about new assignments",
				fmt.Sprintf("Transfer 2-3 responsibilities from %s", heavy.PersonName),
				"Provide orientation and training where needed",
			},
		})
	}

	return recommendations
}

// scarceSkills returns up to three skill tags held by fewer than two people
// fleet-wide
func scarceSkills(profiles []model.WorkloadProfile) []string {
	counts := make(map[string]int)
	var order []string
	for _, profile := range profiles {
		for _, skill := range profile.SkillsProfile {
			if counts[skill] == 0 {
				order = append(order, skill)
			}
			counts[skill]++
		}
	}

	var scarce []string
	for _, skill := range order {
		if counts[skill] < RareSkillCount {
			scarce = append(scarce, skill)
		}
		if len(scarce) == 3 {
			break
		}
	}
	return scarce
}

// needingRest finds people with heavy monthly load whose most recent
// completed assignment is under a week old
func needingRest(profiles []model.WorkloadProfile, now time.Time) []model.WorkloadProfile {
	cutoff := now.AddDate(0, 0, -RestRecentDays).Format("2006-01-02")
	return filterProfiles(profiles, func(p model.WorkloadProfile) bool {
		return p.MonthlyAssignments > RestMonthlyThreshold &&
			p.LastCompletedDate != "" &&
			p.LastCompletedDate > cutoff
	})
}

// recommendationRank orders by priority, with rest periods ahead of other
// recommendation types at the same priority
func recommendationRank(rec model.BalancingRecommendation) int {
	rank := rec.Priority.Rank() * 10
	if rec.Type == model.RecommendRestPeriod {
		rank++
	}
	return rank
}

func filterProfiles(profiles []model.WorkloadProfile, keep func(model.WorkloadProfile) bool) []model.WorkloadProfile {
	var filtered []model.WorkloadProfile
	for _, profile := range profiles {
		if keep(profile) {
			filtered = append(filtered, profile)
		}
	}
	return filtered
}

func personIDs(profiles []model.WorkloadProfile) []string {
	ids := make([]string, len(profiles))
	for i, profile := range profiles {
		ids[i] = profile.PersonID
	}
	return ids
}

func sharesSkill(first, second []string) bool {
	for _, a := range first {
		for _, b := range second {
			if strings.EqualFold(a, b) {
				return true
			}
		}
	}
	return false
}
