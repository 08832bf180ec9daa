package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/kesterhols/volunteer-engine/internal/config"
	"github.com/kesterhols/volunteer-engine/pkg/core/gaps"
	"github.com/kesterhols/volunteer-engine/pkg/core/model"
	"github.com/kesterhols/volunteer-engine/pkg/db"
)

// PriorityArea is one entry in the gap analysis block
type PriorityArea struct {
	Area      string `json:"area"`
	Urgency   int    `json:"urgency"`
	Shortfall int    `json:"shortfall"`
}

// GapSummary counts identified gaps by priority tier
type GapSummary struct {
	TotalGaps          int `json:"totalGaps"`
	CriticalGaps       int `json:"criticalGaps"`
	HighPriorityGaps   int `json:"highPriorityGaps"`
	MediumPriorityGaps int `json:"mediumPriorityGaps"`
	LowPriorityGaps    int `json:"lowPriorityGaps"`
}

// GapReport is the result of a gap identification run
type GapReport struct {
	Gaps              []model.Gap    `json:"gaps"`
	Summary           GapSummary     `json:"summary"`
	AverageGapUrgency float64        `json:"averageGapUrgency"`
	TopPriorityAreas  []PriorityArea `json:"topPriorityAreas"`
	Warnings          []string       `json:"warnings,omitempty"`
}

// IdentifyGaps scans the catalog's upcoming events and standing ministries
// for unmet staffing needs within the lookahead window. Gaps are derived
// findings recomputed on every call; nothing is persisted.
func IdentifyGaps(ctx context.Context, database db.Database, cfg *config.Config, logger *zap.Logger, daysAhead int) (*GapReport, error) {
	if daysAhead <= 0 {
		daysAhead = cfg.DaysAhead
	}

	now := time.Now()
	from := now.Format("2006-01-02")
	to := now.AddDate(0, 0, daysAhead).Format("2006-01-02")

	logger.Debug("Identifying scheduling gaps",
		zap.String("tenant_id", cfg.TenantID),
		zap.Int("days_ahead", daysAhead))

	events, err := database.GetUpcomingEvents(ctx, cfg.TenantID, from, to)
	if err != nil {
		return nil, &model.DependencyError{Op: "catalog.GetUpcomingEvents", Err: err}
	}
	logger.Debug("Fetched upcoming events", zap.Int("count", len(events)))

	ministries, err := database.GetMinistries(ctx, cfg.TenantID)
	if err != nil {
		return nil, &model.DependencyError{Op: "catalog.GetMinistries", Err: err}
	}
	logger.Debug("Fetched ministries", zap.Int("count", len(ministries)))

	slots, warnings := parseSlots(cfg.MinistrySlots)

	identified := gaps.Identify(events, ministries, slots, now)

	report := &GapReport{
		Gaps:     identified,
		Warnings: warnings,
	}
	summarizeGaps(report)

	logger.Info("Gap identification complete",
		zap.Int("total", report.Summary.TotalGaps),
		zap.Int("critical", report.Summary.CriticalGaps))

	return report, nil
}

// NotifyCriticalGaps announces CRITICAL gaps through the notification
// dispatcher. Fire-and-forget: failures are logged and never returned.
func NotifyCriticalGaps(logger *zap.Logger, notifier db.Notifier, recipient string, report *GapReport) {
	for _, gap := range report.Gaps {
		if gap.Priority != model.PriorityCritical {
			continue
		}
		subject := fmt.Sprintf("Volunteer gap alert: %s", gap.Title)
		body := fmt.Sprintf("%s on %s (%s-%s) has %d of %d volunteers. %d more needed.",
			gap.Title, gap.Date, gap.StartTime, gap.EndTime,
			gap.CurrentVolunteers, gap.RequiredVolunteers, gap.Shortfall())
		if err := notifier.SendAlert(recipient, subject, body); err != nil {
			logger.Warn("Failed to send gap alert",
				zap.String("gap_id", gap.ID),
				zap.Error(err))
		}
	}
}

// parseSlots converts configured ministry slots into parsed recurrence
// rules. Invalid rules were rejected at config load, but a slot that fails
// here degrades to the default window with a warning.
func parseSlots(slots []config.MinistrySlot) (map[string]gaps.Slot, []string) {
	parsed := make(map[string]gaps.Slot, len(slots))
	var warnings []string
	for _, slot := range slots {
		rule, err := rrule.StrToRRule(slot.RRule)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("ministry %s: unusable rrule, using default slot", slot.MinistryID))
			continue
		}
		parsed[slot.MinistryID] = gaps.Slot{
			Rule:      rule,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}
	return parsed, warnings
}

func summarizeGaps(report *GapReport) {
	totalUrgency := 0
	for _, gap := range report.Gaps {
		report.Summary.TotalGaps++
		totalUrgency += gap.UrgencyScore
		switch gap.Priority {
		case model.PriorityCritical:
			report.Summary.CriticalGaps++
		case model.PriorityHigh:
			report.Summary.HighPriorityGaps++
		case model.PriorityMedium:
			report.Summary.MediumPriorityGaps++
		case model.PriorityLow:
			report.Summary.LowPriorityGaps++
		}
	}

	if report.Summary.TotalGaps > 0 {
		report.AverageGapUrgency = float64(totalUrgency) / float64(report.Summary.TotalGaps)
	}

	for i, gap := range report.Gaps {
		if i == 5 {
			break
		}
		report.TopPriorityAreas = append(report.TopPriorityAreas, PriorityArea{
			Area:      gap.Title,
			Urgency:   gap.UrgencyScore,
			Shortfall: gap.Shortfall(),
		})
	}
}
