package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kesterhols/volunteer-engine/pkg/core/model"
	"github.com/kesterhols/volunteer-engine/pkg/db"
)

func futureGap() model.Gap {
	return model.Gap{
		ID:        "event-e1",
		Title:     "Spring Fair - volunteers needed",
		Date:      "2030-06-15",
		StartTime: "10:00",
		EndTime:   "14:00",
	}
}

func TestScoreMatches_RanksRoster(t *testing.T) {
	database := &fakeDatabase{
		people: []db.Person{
			{ID: "p1", FirstName: "Novice", ExperienceLevel: 1},
			{ID: "p2", FirstName: "Veteran", ExperienceLevel: 9},
		},
	}

	report, err := ScoreMatches(context.Background(), database, zap.NewNop(), "tenant-1", []model.Gap{futureGap()}, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.TotalCandidates)
	assert.Equal(t, 2, report.Summary.QualifiedMatches)
	assert.Equal(t, 1, report.Summary.GapsCovered)

	matches := report.Matches["event-e1"]
	require.Len(t, matches, 2)
	assert.Equal(t, "p2", matches[0].PersonID)
	assert.Equal(t, "p1", matches[1].PersonID)
}

func TestScoreMatches_EmptyTenant(t *testing.T) {
	_, err := ScoreMatches(context.Background(), &fakeDatabase{}, zap.NewNop(), "", nil, 3)
	require.Error(t, err)

	var inputErr *model.InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestScoreMatches_PeopleFetchFailure(t *testing.T) {
	database := &fakeDatabase{peopleErr: errors.New("connection refused")}

	_, err := ScoreMatches(context.Background(), database, zap.NewNop(), "tenant-1", []model.Gap{futureGap()}, 3)
	require.Error(t, err)

	var depErr *model.DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "directory.GetActivePeople", depErr.Op)
}

func TestScoreMatches_MalformedGapBecomesWarning(t *testing.T) {
	database := &fakeDatabase{
		people: []db.Person{{ID: "p1", FirstName: "Able"}},
	}

	bad := futureGap()
	bad.ID = "event-bad"
	bad.Date = "15/06/2030"

	report, err := ScoreMatches(context.Background(), database, zap.NewNop(), "tenant-1", []model.Gap{futureGap(), bad}, 3)
	require.NoError(t, err)

	// The good gap still scored
	assert.Equal(t, 1, report.Summary.GapsCovered)
	assert.NotContains(t, report.Matches, "event-bad")
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "event-bad")
}

func TestScoreMatches_NoGaps(t *testing.T) {
	database := &fakeDatabase{
		people: []db.Person{{ID: "p1", FirstName: "Able"}},
	}

	report, err := ScoreMatches(context.Background(), database, zap.NewNop(), "tenant-1", nil, 3)
	require.NoError(t, err)
	assert.Empty(t, report.Matches)
	assert.Equal(t, 0, report.Summary.GapsCovered)
}
