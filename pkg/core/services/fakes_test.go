package services

import (
	"context"
	"fmt"

	"github.com/kesterhols/volunteer-engine/pkg/db"
)

// fakeDatabase is an in-memory db.Database for service tests
type fakeDatabase struct {
	people      []db.Person
	volunteers  []db.Person
	assignments []db.Assignment
	events      []db.Event
	ministries  []db.Ministry

	peopleErr      error
	assignmentsErr error
	eventsErr      error
	ministriesErr  error

	timeUpdates []timeUpdate
	updateErr   error
}

type timeUpdate struct {
	assignmentID string
	startTime    string
	endTime      string
	note         string
}

func (f *fakeDatabase) GetActivePeople(ctx context.Context, tenantID string) ([]db.Person, error) {
	if f.peopleErr != nil {
		return nil, f.peopleErr
	}
	return f.people, nil
}

func (f *fakeDatabase) GetActiveVolunteers(ctx context.Context, tenantID string) ([]db.Person, error) {
	if f.peopleErr != nil {
		return nil, f.peopleErr
	}
	return f.volunteers, nil
}

func (f *fakeDatabase) GetAssignments(ctx context.Context, tenantID, from, to string) ([]db.Assignment, error) {
	if f.assignmentsErr != nil {
		return nil, f.assignmentsErr
	}
	return f.assignments, nil
}

func (f *fakeDatabase) UpdateAssignmentTime(ctx context.Context, assignmentID, startTime, endTime, note string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.timeUpdates = append(f.timeUpdates, timeUpdate{assignmentID, startTime, endTime, note})
	return nil
}

func (f *fakeDatabase) GetUpcomingEvents(ctx context.Context, tenantID, from, to string) ([]db.Event, error) {
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	return f.events, nil
}

func (f *fakeDatabase) GetMinistries(ctx context.Context, tenantID string) ([]db.Ministry, error) {
	if f.ministriesErr != nil {
		return nil, f.ministriesErr
	}
	return f.ministries, nil
}

// fakeNotifier records sent alerts and can be made to fail
type fakeNotifier struct {
	sent    []sentAlert
	failFor string
}

type sentAlert struct {
	to      string
	subject string
	body    string
}

func (f *fakeNotifier) SendAlert(to, subject, body string) error {
	if f.failFor != "" && f.failFor == subject {
		return fmt.Errorf("smtp unavailable")
	}
	f.sent = append(f.sent, sentAlert{to, subject, body})
	return nil
}
