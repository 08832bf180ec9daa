package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kesterhols/volunteer-engine/pkg/core/matching"
	"github.com/kesterhols/volunteer-engine/pkg/core/model"
	"github.com/kesterhols/volunteer-engine/pkg/db"
)

// MatchSummary aggregates a scoring run
type MatchSummary struct {
	TotalCandidates  int `json:"totalCandidates"`
	QualifiedMatches int `json:"qualifiedMatches"`
	GapsCovered      int `json:"gapsCovered"`
}

// MatchReport holds ranked matches keyed by gap ID
type MatchReport struct {
	Matches  map[string][]model.Match `json:"matches"`
	Summary  MatchSummary             `json:"summary"`
	Warnings []string                 `json:"warnings,omitempty"`
}

// ScoreMatches ranks every eligible person against each gap and returns the
// top candidates per gap. Scoring is CPU-bound and fans out per gap across a
// bounded worker pool; all collaborator reads happen up front.
func ScoreMatches(ctx context.Context, database db.Database, logger *zap.Logger, tenantID string, gapList []model.Gap, topN int) (*MatchReport, error) {
	if tenantID == "" {
		return nil, &model.InputError{Field: "tenantID", Msg: "must not be empty"}
	}

	logger.Debug("Scoring candidate matches",
		zap.String("tenant_id", tenantID),
		zap.Int("gaps", len(gapList)),
		zap.Int("top_n", topN))

	people, err := database.GetActivePeople(ctx, tenantID)
	if err != nil {
		return nil, &model.DependencyError{Op: "directory.GetActivePeople", Err: err}
	}

	// Trailing 30 days feed the fatigue penalty; the open upper bound covers
	// every gap in the window.
	from := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	assignments, err := database.GetAssignments(ctx, tenantID, from, "")
	if err != nil {
		return nil, &model.DependencyError{Op: "assignments.GetAssignments", Err: err}
	}

	candidates, warnings := buildCandidates(people, assignments)
	logger.Debug("Built candidate roster",
		zap.Int("people", len(candidates)),
		zap.Int("assignments", len(assignments)))

	report := &MatchReport{
		Matches:  make(map[string][]model.Match, len(gapList)),
		Warnings: warnings,
	}
	report.Summary.TotalCandidates = len(candidates)

	results := make([][]model.Match, len(gapList))
	errs := make([]error, len(gapList))
	forEachIndex(len(gapList), func(i int) {
		results[i], errs[i] = matching.ScoreGap(gapList[i], candidates, topN)
	})

	for i, gap := range gapList {
		if errs[i] != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("gap %s skipped: %v", gap.ID, errs[i]))
			continue
		}
		report.Matches[gap.ID] = results[i]
		report.Summary.QualifiedMatches += len(results[i])
		if len(results[i]) > 0 {
			report.Summary.GapsCovered++
		}
	}

	logger.Info("Match scoring complete",
		zap.Int("qualified", report.Summary.QualifiedMatches),
		zap.Int("gaps_covered", report.Summary.GapsCovered))

	return report, nil
}
