package gaps

import (
	"math"
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/kesterhols/volunteer-engine/pkg/core/model"
	"github.com/kesterhols/volunteer-engine/pkg/db"
	"github.com/kesterhols/volunteer-engine/pkg/timeutil"
)

// Slot is a ministry's recurring service window, parsed from configuration
type Slot struct {
	Rule      *rrule.RRule
	StartTime string
	EndTime   string
}

// Default skill tags attached to event gaps when the catalog carries none
var (
	defaultEventSkills  = []string{"event_support"}
	defaultEventTags    = []string{"service", "hospitality", "helps"}
	defaultSlotStart    = "09:00"
	defaultSlotEnd      = "11:00"
	defaultSlotLeadDays = 7
)

// Identify scans upcoming events and standing ministries and returns the
// staffing gaps, sorted by descending urgency. Gap IDs are deterministic
// composite keys, so repeated calls over the same snapshot are idempotent.
func Identify(events []db.Event, ministries []db.Ministry, slots map[string]Slot, now time.Time) []model.Gap {
	gaps := make([]model.Gap, 0, len(events)+len(ministries))

	for _, event := range events {
		if gap, ok := eventGap(event); ok {
			gaps = append(gaps, gap)
		}
	}

	for _, ministry := range ministries {
		if gap, ok := ministryGap(ministry, slots, now); ok {
			gaps = append(gaps, gap)
		}
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].UrgencyScore > gaps[j].UrgencyScore
	})

	return gaps
}

// eventGap flags an event whose assigned count is below the buffered
// estimate of what it needs
func eventGap(event db.Event) (model.Gap, bool) {
	current := event.AssignedCount
	required := int(math.Ceil(float64(current) * StaffingBuffer))
	if required < MinEventRequired {
		required = MinEventRequired
	}

	if current >= required {
		return model.Gap{}, false
	}

	ratio := float64(current) / float64(required)
	priority := model.PriorityLow
	urgency := UrgencyLow
	switch {
	case ratio < CriticalCoverageRatio:
		priority = model.PriorityCritical
		urgency = UrgencyCritical
	case ratio < HighCoverageRatio:
		priority = model.PriorityHigh
		urgency = UrgencyHigh
	case ratio < MediumCoverageRatio:
		priority = model.PriorityMedium
		urgency = UrgencyMedium
	}

	endTime := event.EndTime
	if endTime == "" {
		if start, err := timeutil.ToMinutes(event.StartTime); err == nil {
			endTime = timeutil.FromMinutes(min(start+DefaultEventDurationMinutes, 23*60+59))
		}
	}

	return model.Gap{
		ID:                 "event-" + event.ID,
		EventID:            event.ID,
		Title:              event.Title + " - volunteers needed",
		Date:               event.Date,
		StartTime:          event.StartTime,
		EndTime:            endTime,
		RequiredVolunteers: required,
		CurrentVolunteers:  current,
		Priority:           priority,
		UrgencyScore:       urgency,
		RequiredSkills:     defaultEventSkills,
		PreferredTags:      defaultEventTags,
	}, true
}

// ministryGap flags a ministry with too few active volunteers or too little
// engagement. A ministry with nobody at all is always CRITICAL.
func ministryGap(ministry db.Ministry, slots map[string]Slot, now time.Time) (model.Gap, bool) {
	active := ministry.ActiveVolunteerCount
	avgAssignments := float64(ministry.RecentAssignmentCount) / math.Max(1, float64(active))

	if active >= MinistryMinActive && avgAssignments >= MinistryMinAvgAssignments {
		return model.Gap{}, false
	}

	required := int(math.Ceil(float64(active) * MinistryGrowthFactor))
	if required < MinMinistryRequired {
		required = MinMinistryRequired
	}

	priority := model.PriorityMedium
	urgency := MinistryUrgencyBase - active*MinistryUrgencyPerVolunteer
	switch {
	case active == 0:
		priority = model.PriorityCritical
		urgency = MinistryUrgencyEmpty
	case active < 2:
		priority = model.PriorityHigh
	}

	date, startTime, endTime := ministryWindow(ministry.ID, slots, now)

	return model.Gap{
		ID:                 "ministry-" + ministry.ID,
		MinistryID:         ministry.ID,
		Title:              ministry.Name + " - needs regular volunteers",
		Date:               date,
		StartTime:          startTime,
		EndTime:            endTime,
		RequiredVolunteers: required,
		CurrentVolunteers:  active,
		Priority:           priority,
		UrgencyScore:       urgency,
	}, true
}

// ministryWindow resolves the next occurrence of the ministry's configured
// slot. Without a configured slot the gap lands one week out in a morning
// window.
func ministryWindow(ministryID string, slots map[string]Slot, now time.Time) (date, startTime, endTime string) {
	if slot, ok := slots[ministryID]; ok && slot.Rule != nil {
		next := slot.Rule.After(now, false)
		if !next.IsZero() {
			return next.Format("2006-01-02"), slot.StartTime, slot.EndTime
		}
	}

	return now.AddDate(0, 0, defaultSlotLeadDays).Format("2006-01-02"), defaultSlotStart, defaultSlotEnd
}
