package services

import (
	"fmt"
	"sync"

	"github.com/kesterhols/volunteer-engine/pkg/core/matching"
	"github.com/kesterhols/volunteer-engine/pkg/db"
)

// Fan-out bounds keeping p99 latency predictable regardless of roster size
const (
	maxPeopleConsidered     = 200
	maxAssignmentsPerPerson = 50
	maxWorkers              = 8
)

// buildCandidates joins the people snapshot with their assignments, applies
// the roster caps, and reports skipped records as warnings. A malformed
// person record never aborts the batch.
func buildCandidates(people []db.Person, assignments []db.Assignment) ([]matching.Candidate, []string) {
	var warnings []string

	byPerson := make(map[string][]db.Assignment, len(people))
	for _, a := range assignments {
		if a.PersonID == "" {
			warnings = append(warnings, fmt.Sprintf("assignment %s has no person, skipped", a.ID))
			continue
		}
		if len(byPerson[a.PersonID]) == maxAssignmentsPerPerson {
			continue
		}
		byPerson[a.PersonID] = append(byPerson[a.PersonID], a)
	}

	candidates := make([]matching.Candidate, 0, len(people))
	for _, person := range people {
		if person.ID == "" {
			warnings = append(warnings, fmt.Sprintf("person record without id (%s), skipped", person.Name()))
			continue
		}
		if len(candidates) == maxPeopleConsidered {
			warnings = append(warnings, fmt.Sprintf("roster capped at %d people", maxPeopleConsidered))
			break
		}
		candidates = append(candidates, matching.Candidate{
			Person:      person,
			Assignments: byPerson[person.ID],
		})
	}

	return candidates, warnings
}

// forEachIndex runs fn for every index in [0, n) across a bounded pool of
// worker goroutines. fn must only write to its own index slot.
func forEachIndex(n int, fn func(i int)) {
	workers := maxWorkers
	if n < workers {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()
}
