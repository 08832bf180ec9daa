package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kesterhols/volunteer-engine/pkg/core/balance"
	"github.com/kesterhols/volunteer-engine/pkg/core/model"
	"github.com/kesterhols/volunteer-engine/pkg/db"
)

// WorkloadSummary aggregates a fleet workload analysis
type WorkloadSummary struct {
	TotalVolunteers      int     `json:"totalVolunteers"`
	AverageWorkloadScore float64 `json:"averageWorkloadScore"`
	HighBurnoutRisk      int     `json:"highBurnoutRisk"`
	Underutilized        int     `json:"underutilized"`
	BalanceScore         float64 `json:"balanceScore"`
}

// WorkloadInsight is one entry in the most-overloaded / most-available lists
type WorkloadInsight struct {
	Name        string            `json:"name"`
	Score       int               `json:"score"`
	Risk        model.BurnoutRisk `json:"risk"`
	Assignments int               `json:"assignments"`
}

// WorkloadReport is the result of a workload analysis run
type WorkloadReport struct {
	Profiles        []model.WorkloadProfile         `json:"profiles"`
	Recommendations []model.BalancingRecommendation `json:"recommendations"`
	Summary         WorkloadSummary                 `json:"summary"`
	MostOverloaded  []WorkloadInsight               `json:"mostOverloaded"`
	MostAvailable   []WorkloadInsight               `json:"mostAvailable"`
	Warnings        []string                        `json:"warnings,omitempty"`
}

// AnalyzeWorkload computes a workload profile for every active volunteer and
// synthesizes fleet-level balancing recommendations, sorted by priority.
func AnalyzeWorkload(ctx context.Context, database db.Database, logger *zap.Logger, tenantID string) (*WorkloadReport, error) {
	if tenantID == "" {
		return nil, &model.InputError{Field: "tenantID", Msg: "must not be empty"}
	}

	now := time.Now()
	logger.Debug("Analyzing volunteer workloads", zap.String("tenant_id", tenantID))

	volunteers, err := database.GetActiveVolunteers(ctx, tenantID)
	if err != nil {
		return nil, &model.DependencyError{Op: "directory.GetActiveVolunteers", Err: err}
	}

	// 90 days of history feed the monthly counts and rest-period checks
	from := now.AddDate(0, 0, -90).Format("2006-01-02")
	assignments, err := database.GetAssignments(ctx, tenantID, from, "")
	if err != nil {
		return nil, &model.DependencyError{Op: "assignments.GetAssignments", Err: err}
	}

	candidates, warnings := buildCandidates(volunteers, assignments)

	profiles := balance.AnalyzeWorkloads(candidates, now)
	recommendations := balance.Recommend(profiles, now)

	report := &WorkloadReport{
		Profiles:        profiles,
		Recommendations: recommendations,
		Warnings:        warnings,
	}
	summarizeWorkloads(report)

	logger.Info("Workload analysis complete",
		zap.Int("volunteers", len(profiles)),
		zap.Int("recommendations", len(recommendations)),
		zap.Int("high_risk", report.Summary.HighBurnoutRisk))

	return report, nil
}

func summarizeWorkloads(report *WorkloadReport) {
	profiles := report.Profiles
	report.Summary.TotalVolunteers = len(profiles)
	if len(profiles) == 0 {
		return
	}

	totalScore := 0
	for _, profile := range profiles {
		totalScore += profile.WorkloadScore
		if profile.BurnoutRisk == model.BurnoutHigh || profile.BurnoutRisk == model.BurnoutCritical {
			report.Summary.HighBurnoutRisk++
		}
		if profile.CurrentAssignments == 0 {
			report.Summary.Underutilized++
		}
	}

	average := float64(totalScore) / float64(len(profiles))
	report.Summary.AverageWorkloadScore = average
	report.Summary.BalanceScore = 100 - (average + float64(report.Summary.HighBurnoutRisk*10))

	// Profiles arrive sorted by descending workload score
	for i := 0; i < len(profiles) && i < 3; i++ {
		report.MostOverloaded = append(report.MostOverloaded, WorkloadInsight{
			Name:        profiles[i].PersonName,
			Score:       profiles[i].WorkloadScore,
			Risk:        profiles[i].BurnoutRisk,
			Assignments: profiles[i].CurrentAssignments,
		})
	}
	for i := len(profiles) - 1; i >= 0 && len(report.MostAvailable) < 3; i-- {
		report.MostAvailable = append(report.MostAvailable, WorkloadInsight{
			Name:        profiles[i].PersonName,
			Score:       profiles[i].WorkloadScore,
			Risk:        profiles[i].BurnoutRisk,
			Assignments: profiles[i].CurrentAssignments,
		})
	}
}
