package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesterhols/volunteer-engine/pkg/core/model"
)

func overloadedProfile(id, name string, skills ...string) model.WorkloadProfile {
	return model.WorkloadProfile{
		PersonID:           id,
		PersonName:         name,
		CurrentAssignments: 5,
		WeeklyAssignments:  3,
		MonthlyAssignments: 5,
		WorkloadScore:      70,
		BurnoutRisk:        model.BurnoutHigh,
		SkillsProfile:      skills,
	}
}

func idleProfile(id, name string, skills ...string) model.WorkloadProfile {
	return model.WorkloadProfile{
		PersonID:      id,
		PersonName:    name,
		BurnoutRisk:   model.BurnoutLow,
		SkillsProfile: skills,
	}
}

func TestRecommend_NoProfilesNoAdvice(t *testing.T) {
	assert.Empty(t, Recommend(nil, analysisNow))
}

func TestRecommend_BalancedFleetOnlyFlagsIdle(t *testing.T) {
	profiles := []model.WorkloadProfile{
		{PersonID: "p1", CurrentAssignments: 1, MonthlyAssignments: 2, WorkloadScore: 20, BurnoutRisk: model.BurnoutLow},
		{PersonID: "p2", CurrentAssignments: 2, MonthlyAssignments: 3, WorkloadScore: 30, BurnoutRisk: model.BurnoutLow},
	}

	recommendations := Recommend(profiles, analysisNow)
	assert.Empty(t, recommendations)
}

func TestRecommend_OverloadTriggersRedistribute(t *testing.T) {
	profiles := []model.WorkloadProfile{
		overloadedProfile("p1", "Maya Cole", "music"),
		idleProfile("p2", "Ben Ames", "music"),
	}

	recommendations := Recommend(profiles, analysisNow)
	require.NotEmpty(t, recommendations)

	first := recommendations[0]
	assert.Equal(t, model.RecommendRedistribute, first.Type)
	assert.Equal(t, model.PriorityHigh, first.Priority)
	assert.Equal(t, []string{"p1"}, first.AffectedPeople)
	assert.NotEmpty(t, first.ActionItems)
}

func TestRecommend_PairingSharesSkillOrIsSkilless(t *testing.T) {
	profiles := []model.WorkloadProfile{
		overloadedProfile("p1", "Maya Cole", "music"),
		idleProfile("p2", "Ben Ames", "music"),
		idleProfile("p3", "Cara Dunn"), // no recorded skills still qualifies
		idleProfile("p4", "Dan Epps", "catering"),
	}

	recommendations := Recommend(profiles, analysisNow)

	var pairing *model.BalancingRecommendation
	for i := range recommendations {
		if recommendations[i].Type == model.RecommendRedistribute && recommendations[i].Priority == model.PriorityMedium {
			pairing = &recommendations[i]
			break
		}
	}
	require.NotNil(t, pairing)

	// Heavy person first, then at most two alternates in profile order
	assert.Equal(t, []string{"p1", "p2", "p3"}, pairing.AffectedPeople)
	assert.Contains(t, pairing.Description, "Maya Cole")
}

func TestRecommend_RecruitmentNeedsMoreThanThreeIdle(t *testing.T) {
	profiles := []model.WorkloadProfile{
		idleProfile("p1", "A"),
		idleProfile("p2", "B"),
		idleProfile("p3", "C"),
	}

	for _, rec := range Recommend(profiles, analysisNow) {
		assert.NotEqual(t, model.RecommendNewRecruitment, rec.Type)
	}

	profiles = append(profiles, idleProfile("p4", "D"))
	recommendations := Recommend(profiles, analysisNow)

	var found *model.BalancingRecommendation
	for i := range recommendations {
		if recommendations[i].Type == model.RecommendNewRecruitment {
			found = &recommendations[i]
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, model.PriorityMedium, found.Priority)
	assert.Len(t, found.AffectedPeople, 4)
}

func TestRecommend_ScarceSkillsTriggerDevelopment(t *testing.T) {
	profiles := []model.WorkloadProfile{
		idleProfile("p1", "A", "sound_engineering"),
		idleProfile("p2", "B", "hospitality"),
		idleProfile("p3", "C", "hospitality"),
	}

	recommendations := Recommend(profiles, analysisNow)

	var found *model.BalancingRecommendation
	for i := range recommendations {
		if recommendations[i].Type == model.RecommendSkillDevelopment {
			found = &recommendations[i]
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, model.PriorityLow, found.Priority)
	assert.Contains(t, found.Description, "sound_engineering")
	assert.NotContains(t, found.Description, "hospitality")
}

func TestRecommend_RestPeriodNeedsRecentCompletion(t *testing.T) {
	heavy := model.WorkloadProfile{
		PersonID:           "p1",
		PersonName:         "Sam Ortiz",
		MonthlyAssignments: 7,
		WorkloadScore:      30,
		BurnoutRisk:        model.BurnoutMedium,
		LastCompletedDate:  "2026-03-10", // the day before analysis
	}

	recommendations := Recommend([]model.WorkloadProfile{heavy}, analysisNow)

	var found *model.BalancingRecommendation
	for i := range recommendations {
		if recommendations[i].Type == model.RecommendRestPeriod {
			found = &recommendations[i]
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, model.PriorityHigh, found.Priority)
	assert.Equal(t, []string{"p1"}, found.AffectedPeople)

	// Same load but the last completion is over a week old
	heavy.LastCompletedDate = "2026-02-20"
	for _, rec := range Recommend([]model.WorkloadProfile{heavy}, analysisNow) {
		assert.NotEqual(t, model.RecommendRestPeriod, rec.Type)
	}
}

func TestRecommend_RestPeriodOutranksOtherHighAdvice(t *testing.T) {
	resting := model.WorkloadProfile{
		PersonID:           "p1",
		PersonName:         "Sam Ortiz",
		CurrentAssignments: 5,
		MonthlyAssignments: 9,
		WorkloadScore:      70,
		BurnoutRisk:        model.BurnoutHigh,
		LastCompletedDate:  "2026-03-10",
	}

	recommendations := Recommend([]model.WorkloadProfile{resting}, analysisNow)
	require.True(t, len(recommendations) >= 2)

	assert.Equal(t, model.RecommendRestPeriod, recommendations[0].Type)
	assert.Equal(t, model.RecommendRedistribute, recommendations[1].Type)

	// Priorities never increase down the list
	for i := 1; i < len(recommendations); i++ {
		assert.GreaterOrEqual(t,
			recommendations[i-1].Priority.Rank(),
			recommendations[i].Priority.Rank())
	}
}
