package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kesterhols/volunteer-engine/pkg/core/model"
	"github.com/kesterhols/volunteer-engine/pkg/db"
)

// ResolutionReport is the result of a resolution run
type ResolutionReport struct {
	Applied    []model.AppliedResolution `json:"applied"`
	ReportOnly int                       `json:"reportOnly"`
	Warnings   []string                  `json:"warnings,omitempty"`
}

// ResolveConflicts applies the first-ranked resolution of each CRITICAL
// conflict when autoApplyCritical is set; every other severity is
// report-only. Writes run sequentially so no two resolutions touch the same
// assignment concurrently, each conflict's write is a single atomic update,
// and one failed application never blocks the rest.
func ResolveConflicts(ctx context.Context, store db.AssignmentStore, logger *zap.Logger, conflictList []model.Conflict, autoApplyCritical bool) (*ResolutionReport, error) {
	report := &ResolutionReport{}

	logger.Debug("Resolving conflicts",
		zap.Int("conflicts", len(conflictList)),
		zap.Bool("auto_apply_critical", autoApplyCritical))

	for _, conflict := range conflictList {
		if !autoApplyCritical || conflict.Severity != model.PriorityCritical {
			report.ReportOnly++
			continue
		}
		if len(conflict.Resolutions) == 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("conflict %s has no resolutions", conflict.ID))
			continue
		}

		resolution := conflict.Resolutions[0]
		if resolution.Type != model.ResolutionTimeShift || resolution.TimeAdjustment == nil {
			// Reassignments and replacements need a human decision
			report.ReportOnly++
			continue
		}

		adjustment := resolution.TimeAdjustment
		note := "Auto-resolved: " + resolution.Description
		if err := store.UpdateAssignmentTime(ctx, adjustment.AssignmentID, adjustment.NewStart, adjustment.NewEnd, note); err != nil {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("conflict %s: failed to apply time shift: %v", conflict.ID, err))
			continue
		}

		applied := model.AppliedResolution{
			ID:          uuid.New().String(),
			ConflictID:  conflict.ID,
			Type:        resolution.Type,
			Description: resolution.Description,
			AuditNote:   note,
		}
		report.Applied = append(report.Applied, applied)

		logger.Info("Applied resolution",
			zap.String("conflict_id", conflict.ID),
			zap.String("assignment_id", adjustment.AssignmentID),
			zap.String("new_window", adjustment.NewStart+"-"+adjustment.NewEnd))
	}

	logger.Info("Resolution run complete",
		zap.Int("applied", len(report.Applied)),
		zap.Int("report_only", report.ReportOnly))

	return report, nil
}
