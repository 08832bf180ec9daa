package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kesterhols/volunteer-engine/pkg/core/conflicts"
	"github.com/kesterhols/volunteer-engine/pkg/core/matching"
	"github.com/kesterhols/volunteer-engine/pkg/core/model"
	"github.com/kesterhols/volunteer-engine/pkg/db"
)

// ConflictSummary counts findings by severity and type
type ConflictSummary struct {
	TotalConflicts    int `json:"totalConflicts"`
	CriticalConflicts int `json:"criticalConflicts"`
	HighConflicts     int `json:"highConflicts"`
	TimeOverlaps      int `json:"timeOverlaps"`
	Overloads         int `json:"overloads"`
}

// ConflictReport is the result of a conflict detection run
type ConflictReport struct {
	Conflicts []model.Conflict `json:"conflicts"`
	Summary   ConflictSummary  `json:"summary"`
	Warnings  []string         `json:"warnings,omitempty"`
}

// DetectConflicts scans upcoming assignments for time overlaps and weekly
// overload, either for one person or for the whole active roster. Detection
// is per-person independent and fans out across a bounded worker pool.
func DetectConflicts(ctx context.Context, database db.Database, logger *zap.Logger, tenantID, personID string) (*ConflictReport, error) {
	if tenantID == "" {
		return nil, &model.InputError{Field: "tenantID", Msg: "must not be empty"}
	}

	logger.Debug("Detecting scheduling conflicts",
		zap.String("tenant_id", tenantID),
		zap.String("person_id", personID))

	volunteers, err := database.GetActiveVolunteers(ctx, tenantID)
	if err != nil {
		return nil, &model.DependencyError{Op: "directory.GetActiveVolunteers", Err: err}
	}

	from := time.Now().Format("2006-01-02")
	assignments, err := database.GetAssignments(ctx, tenantID, from, "")
	if err != nil {
		return nil, &model.DependencyError{Op: "assignments.GetAssignments", Err: err}
	}

	roster, warnings := buildCandidates(volunteers, assignments)

	targets := roster
	if personID != "" {
		targets = nil
		for _, candidate := range roster {
			if candidate.Person.ID == personID {
				targets = []matching.Candidate{candidate}
				break
			}
		}
		if targets == nil {
			return nil, &model.NotFoundError{Kind: "person", ID: personID}
		}
	}

	results := make([][]model.Conflict, len(targets))
	forEachIndex(len(targets), func(i int) {
		results[i] = conflicts.DetectPerson(targets[i].Person, targets[i].Assignments, roster)
	})

	report := &ConflictReport{Warnings: warnings}
	for _, found := range results {
		report.Conflicts = append(report.Conflicts, found...)
	}
	summarizeConflicts(report)

	logger.Info("Conflict detection complete",
		zap.Int("people_scanned", len(targets)),
		zap.Int("total", report.Summary.TotalConflicts),
		zap.Int("critical", report.Summary.CriticalConflicts))

	return report, nil
}

func summarizeConflicts(report *ConflictReport) {
	for _, conflict := range report.Conflicts {
		report.Summary.TotalConflicts++
		switch conflict.Severity {
		case model.PriorityCritical:
			report.Summary.CriticalConflicts++
		case model.PriorityHigh:
			report.Summary.HighConflicts++
		}
		switch conflict.Type {
		case model.ConflictTimeOverlap:
			report.Summary.TimeOverlaps++
		case model.ConflictOverload:
			report.Summary.Overloads++
		}
	}
}
