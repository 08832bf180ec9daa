package gaps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"

	"github.com/kesterhols/volunteer-engine/pkg/core/model"
	"github.com/kesterhols/volunteer-engine/pkg/db"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) // a Monday

func TestIdentify_EmptyEventIsCritical(t *testing.T) {
	events := []db.Event{
		{ID: "e1", Title: "Spring Fair", Date: "2026-03-14", StartTime: "10:00", EndTime: "14:00", AssignedCount: 0},
	}

	gapList := Identify(events, nil, nil, testNow)
	require.Len(t, gapList, 1)

	gap := gapList[0]
	assert.Equal(t, "event-e1", gap.ID)
	assert.Equal(t, "Spring Fair - volunteers needed", gap.Title)
	assert.Equal(t, model.PriorityCritical, gap.Priority)
	assert.Equal(t, UrgencyCritical, gap.UrgencyScore)
	assert.Equal(t, MinEventRequired, gap.RequiredVolunteers)
	assert.Equal(t, 0, gap.CurrentVolunteers)
	assert.Equal(t, 2, gap.Shortfall())
}

func TestIdentify_EventCoverageTiers(t *testing.T) {
	// required = max(2, ceil(current * 1.2)), so ratio = current/required
	tests := []struct {
		name     string
		assigned int
		required int
		priority model.Priority
		urgency  int
	}{
		{"no coverage", 0, 2, model.PriorityCritical, UrgencyCritical},
		{"half coverage", 1, 2, model.PriorityHigh, UrgencyHigh},
		{"three quarters", 3, 4, model.PriorityMedium, UrgencyMedium},
		{"near buffer", 5, 6, model.PriorityLow, UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := []db.Event{
				{ID: "e1", Title: "Event", Date: "2026-03-14", StartTime: "10:00", EndTime: "12:00", AssignedCount: tt.assigned},
			}

			gapList := Identify(events, nil, nil, testNow)
			require.Len(t, gapList, 1)
			assert.Equal(t, tt.required, gapList[0].RequiredVolunteers)
			assert.Equal(t, tt.priority, gapList[0].Priority)
			assert.Equal(t, tt.urgency, gapList[0].UrgencyScore)
		})
	}
}

func TestIdentify_EventEndTimeDefaulted(t *testing.T) {
	events := []db.Event{
		{ID: "e1", Title: "Event", Date: "2026-03-14", StartTime: "09:00", AssignedCount: 0},
	}

	gapList := Identify(events, nil, nil, testNow)
	require.Len(t, gapList, 1)
	assert.Equal(t, "11:00", gapList[0].EndTime)
}

func TestIdentify_EmptyMinistryIsCritical(t *testing.T) {
	ministries := []db.Ministry{
		{ID: "m1", Name: "Welcome Team", ActiveVolunteerCount: 0, RecentAssignmentCount: 0},
	}

	gapList := Identify(nil, ministries, nil, testNow)
	require.Len(t, gapList, 1)

	gap := gapList[0]
	assert.Equal(t, "ministry-m1", gap.ID)
	assert.Equal(t, model.PriorityCritical, gap.Priority)
	assert.Equal(t, MinistryUrgencyEmpty, gap.UrgencyScore)
	assert.Equal(t, MinMinistryRequired, gap.RequiredVolunteers)
}

func TestIdentify_HealthyMinistryProducesNoGap(t *testing.T) {
	ministries := []db.Ministry{
		{ID: "m1", Name: "Worship Team", ActiveVolunteerCount: 4, RecentAssignmentCount: 8},
	}

	gapList := Identify(nil, ministries, nil, testNow)
	assert.Empty(t, gapList)
}

func TestIdentify_UnderstaffedMinistryWithEngagement(t *testing.T) {
	// Engaged but below the active-volunteer floor
	ministries := []db.Ministry{
		{ID: "m1", Name: "Tech Team", ActiveVolunteerCount: 2, RecentAssignmentCount: 10},
	}

	gapList := Identify(nil, ministries, nil, testNow)
	require.Len(t, gapList, 1)

	gap := gapList[0]
	assert.Equal(t, model.PriorityMedium, gap.Priority)
	assert.Equal(t, MinistryUrgencyBase-2*MinistryUrgencyPerVolunteer, gap.UrgencyScore)
	assert.Equal(t, 3, gap.RequiredVolunteers)
}

func TestIdentify_SingleVolunteerMinistryIsHigh(t *testing.T) {
	ministries := []db.Ministry{
		{ID: "m1", Name: "Sound Desk", ActiveVolunteerCount: 1, RecentAssignmentCount: 4},
	}

	gapList := Identify(nil, ministries, nil, testNow)
	require.Len(t, gapList, 1)
	assert.Equal(t, model.PriorityHigh, gapList[0].Priority)
}

func TestIdentify_MinistryUsesConfiguredSlot(t *testing.T) {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rrule.SU},
		Dtstart:   testNow.AddDate(0, 0, -30),
	})
	require.NoError(t, err)

	slots := map[string]Slot{
		"m1": {Rule: rule, StartTime: "08:30", EndTime: "12:30"},
	}
	ministries := []db.Ministry{
		{ID: "m1", Name: "Welcome Team", ActiveVolunteerCount: 0},
	}

	gapList := Identify(nil, ministries, slots, testNow)
	require.Len(t, gapList, 1)

	gap := gapList[0]
	// testNow is a Monday, so the next Sunday is six days out
	assert.Equal(t, "2026-03-08", gap.Date)
	assert.Equal(t, "08:30", gap.StartTime)
	assert.Equal(t, "12:30", gap.EndTime)
}

func TestIdentify_MinistryFallbackWindow(t *testing.T) {
	ministries := []db.Ministry{
		{ID: "m1", Name: "Welcome Team", ActiveVolunteerCount: 0},
	}

	gapList := Identify(nil, ministries, nil, testNow)
	require.Len(t, gapList, 1)

	gap := gapList[0]
	assert.Equal(t, testNow.AddDate(0, 0, 7).Format("2006-01-02"), gap.Date)
	assert.Equal(t, "09:00", gap.StartTime)
	assert.Equal(t, "11:00", gap.EndTime)
}

func TestIdentify_SortedByDescendingUrgency(t *testing.T) {
	events := []db.Event{
		{ID: "e1", Title: "Low", Date: "2026-03-14", StartTime: "10:00", EndTime: "12:00", AssignedCount: 5},
		{ID: "e2", Title: "Critical", Date: "2026-03-15", StartTime: "10:00", EndTime: "12:00", AssignedCount: 0},
	}
	ministries := []db.Ministry{
		{ID: "m1", Name: "Empty", ActiveVolunteerCount: 0},
	}

	gapList := Identify(events, ministries, nil, testNow)
	require.Len(t, gapList, 3)
	assert.Equal(t, "ministry-m1", gapList[0].ID)
	assert.Equal(t, "event-e2", gapList[1].ID)
	assert.Equal(t, "event-e1", gapList[2].ID)
}
