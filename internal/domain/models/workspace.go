// internal/domain/models/workspace.go
package models

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task priorities, highest to lowest.
const (
	PriorityUrgent = "Urgent"
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// DefaultAssignee is stored on tasks created without an assignee.
const DefaultAssignee = "Unassigned"

// ActivityLogLimit bounds the embedded activity log. Insertion is at the
// front; anything past this limit is dropped.
const ActivityLogLimit = 500

// ValidPriority reports whether p is one of the four task priorities.
func ValidPriority(p string) bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Workspace is the singleton aggregate holding all shared team state.
// Members, tasks, messages, and the activity log are owned by the document
// and persisted with it as one consistency unit.
//
// Members and tasks are keyed mappings (id hex -> entity) so removal is map
// deletion rather than list search. Messages are append-only in insertion
// order; the activity log is newest-first and bounded to ActivityLogLimit.
//
// Version is the optimistic-concurrency counter: saving compares and swaps
// on (_id, version) so the later of two concurrent writers gets a conflict
// instead of silently discarding the earlier write.
type Workspace struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Version int64              `bson:"version" json:"-"`

	TeamName      string `bson:"team_name" json:"teamName"`
	TeamHead      string `bson:"team_head" json:"teamHead"`
	LeaderContact string `bson:"leader_contact" json:"leaderContact"`

	Members     map[string]Member `bson:"members" json:"-"`
	Tasks       map[string]Task   `bson:"tasks" json:"-"`
	Messages    []Message         `bson:"messages" json:"messages"`
	ActivityLog []ActivityEntry   `bson:"activity_log" json:"activityLog"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Member is a display-name entry on the team roster. Names are unique
// case-insensitively within the workspace.
type Member struct {
	ID      string    `bson:"id" json:"id"`
	Name    string    `bson:"name" json:"name"`
	AddedAt time.Time `bson:"added_at" json:"addedAt"`
}

// Task is an item of work owned by the workspace. AssignedTo is a
// denormalized member name, not a reference: removing a member cascades to
// tasks by name value, and renaming is deliberately unsupported.
type Task struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Priority    string     `bson:"priority" json:"priority"`
	Done        bool       `bson:"done" json:"done"`
	AssignedTo  string     `bson:"assigned_to" json:"assignedTo"`
	DueDate     *time.Time `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	Comments    []Comment  `bson:"comments" json:"comments"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
}

// Comment is an immutable note on a task.
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	Author    string    `bson:"author" json:"user"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Message is an entry in the workspace chat feed. Append-only.
type Message struct {
	ID        string    `bson:"id" json:"id"`
	Author    string    `bson:"author" json:"user"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// ActivityEntry records one mutating operation in the audit trail.
type ActivityEntry struct {
	Actor      string    `bson:"actor" json:"actor"`
	Action     string    `bson:"action" json:"action"`
	TargetType string    `bson:"target_type" json:"targetType"`
	TargetID   string    `bson:"target_id" json:"targetId"`
	Details    string    `bson:"details" json:"details"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// MemberList returns the roster as a slice ordered by join time, then name.
func (w *Workspace) MemberList() []Member {
	out := make([]Member, 0, len(w.Members))
	for _, m := range w.Members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AddedAt.Equal(out[j].AddedAt) {
			return out[i].AddedAt.Before(out[j].AddedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TaskList returns the tasks as a slice ordered by creation time
// descending (newest first), with id as the tie-break.
func (w *Workspace) TaskList() []Task {
	out := make([]Task, 0, len(w.Tasks))
	for _, t := range w.Tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
