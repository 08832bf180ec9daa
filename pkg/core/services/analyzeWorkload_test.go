package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kesterhols/volunteer-engine/pkg/core/model"
	"github.com/kesterhols/volunteer-engine/pkg/db"
)

func TestAnalyzeWorkload_SummaryAndInsights(t *testing.T) {
	// Upcoming dates relative to the real clock, since the service anchors
	// its windows at time.Now()
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	dayAfter := time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	database := &fakeDatabase{
		volunteers: []db.Person{
			{ID: "p1", FirstName: "Busy", LastName: "Bee"},
			{ID: "p2", FirstName: "Idle", LastName: "Iris"},
		},
		assignments: []db.Assignment{
			{ID: "a1", PersonID: "p1", Date: tomorrow, StartTime: "09:00", EndTime: "10:00", Status: db.StatusConfirmed},
			{ID: "a2", PersonID: "p1", Date: dayAfter, StartTime: "09:00", EndTime: "10:00", Status: db.StatusConfirmed},
		},
	}

	report, err := AnalyzeWorkload(context.Background(), database, zap.NewNop(), "tenant-1")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.TotalVolunteers)
	assert.Equal(t, 1, report.Summary.Underutilized)
	assert.Greater(t, report.Summary.AverageWorkloadScore, 0.0)

	require.Len(t, report.Profiles, 2)
	assert.Equal(t, "p1", report.Profiles[0].PersonID)
	assert.Equal(t, 2, report.Profiles[0].CurrentAssignments)

	require.NotEmpty(t, report.MostOverloaded)
	assert.Equal(t, "Busy Bee", report.MostOverloaded[0].Name)
	require.NotEmpty(t, report.MostAvailable)
	assert.Equal(t, "Idle Iris", report.MostAvailable[0].Name)
}

func TestAnalyzeWorkload_BalanceScore(t *testing.T) {
	database := &fakeDatabase{
		volunteers: []db.Person{
			{ID: "p1", FirstName: "Idle"},
			{ID: "p2", FirstName: "Alsoidle"},
		},
	}

	report, err := AnalyzeWorkload(context.Background(), database, zap.NewNop(), "tenant-1")
	require.NoError(t, err)

	// Nobody has any load: perfect balance
	assert.InDelta(t, 0.0, report.Summary.AverageWorkloadScore, 0.001)
	assert.Equal(t, 0, report.Summary.HighBurnoutRisk)
	assert.InDelta(t, 100.0, report.Summary.BalanceScore, 0.001)
}

func TestAnalyzeWorkload_EmptyTenant(t *testing.T) {
	_, err := AnalyzeWorkload(context.Background(), &fakeDatabase{}, zap.NewNop(), "")
	require.Error(t, err)

	var inputErr *model.InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestAnalyzeWorkload_VolunteersFetchFailure(t *testing.T) {
	database := &fakeDatabase{peopleErr: errors.New("connection refused")}

	_, err := AnalyzeWorkload(context.Background(), database, zap.NewNop(), "tenant-1")
	require.Error(t, err)

	var depErr *model.DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "directory.GetActiveVolunteers", depErr.Op)
}

func TestAnalyzeWorkload_NoVolunteers(t *testing.T) {
	report, err := AnalyzeWorkload(context.Background(), &fakeDatabase{}, zap.NewNop(), "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 0, report.Summary.TotalVolunteers)
	assert.Empty(t, report.Recommendations)
}
