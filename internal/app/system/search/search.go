// Package search filters the workspace's embedded collections.
//
// All filters are pure and conjunctive: an empty field matches everything,
// and each present field must match. Text matching is case-insensitive
// substring; priority and assignee are exact matches.
package search

import (
	"strings"

	"github.com/devflowhq/devflow/internal/app/system/normalize"
	"github.com/devflowhq/devflow/internal/domain/models"
)

// Task status filter values.
const (
	StatusDone   = "done"
	StatusUndone = "undone"
)

// TaskFilter holds the optional task query filters.
type TaskFilter struct {
	Query      string // substring over title, description, assignee
	Priority   string // exact; ignored unless a valid priority
	Status     string // "done", "undone", or empty
	AssignedTo string // exact, case-insensitive
}

// Tasks returns the tasks matching f, preserving input order.
func Tasks(tasks []models.Task, f TaskFilter) []models.Task {
	q := normalize.Fold(f.Query)
	assignee := normalize.Fold(f.AssignedTo)
	usePriority := models.ValidPriority(f.Priority)

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if q != "" && !taskMatchesQuery(t, q) {
			continue
		}
		if usePriority && t.Priority != f.Priority {
			continue
		}
		if f.Status == StatusDone && !t.Done {
			continue
		}
		if f.Status == StatusUndone && t.Done {
			continue
		}
		if assignee != "" && strings.ToLower(t.AssignedTo) != assignee {
			continue
		}
		out = append(out, t)
	}
	return out
}

func taskMatchesQuery(t models.Task, q string) bool {
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) ||
		strings.Contains(strings.ToLower(t.AssignedTo), q)
}

// ActivityFilter holds the optional activity-log query filters.
type ActivityFilter struct {
	Action string // exact action code, case-insensitive
	Query  string // substring over actor, details, target type
}

// Activity returns the entries matching f, preserving input order
// (the log is stored newest first, so no re-sort is needed).
func Activity(entries []models.ActivityEntry, f ActivityFilter) []models.ActivityEntry {
	action := normalize.Fold(f.Action)
	q := normalize.Fold(f.Query)

	out := make([]models.ActivityEntry, 0, len(entries))
	for _, e := range entries {
		if action != "" && strings.ToLower(e.Action) != action {
			continue
		}
		if q != "" && !entryMatchesQuery(e, q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func entryMatchesQuery(e models.ActivityEntry, q string) bool {
	return strings.Contains(strings.ToLower(e.Actor), q) ||
		strings.Contains(strings.ToLower(e.Details), q) ||
		strings.Contains(strings.ToLower(e.TargetType), q)
}
