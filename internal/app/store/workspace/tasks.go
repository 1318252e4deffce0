// internal/app/store/workspace/tasks.go
package workspacestore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devflowhq/devflow/internal/app/system/activity"
	"github.com/devflowhq/devflow/internal/app/system/apperr"
	"github.com/devflowhq/devflow/internal/app/system/normalize"
	"github.com/devflowhq/devflow/internal/domain/models"
)

// dueDateLayouts are the accepted due-date formats, tried in order.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDueDate returns nil for an unparseable value; a bad due date is
// silently treated as absent rather than rejecting the whole request.
func parseDueDate(raw string) *time.Time {
	for _, layout := range dueDateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			ts = ts.UTC()
			return &ts
		}
	}
	return nil
}

// TaskInput carries the fields for task creation.
type TaskInput struct {
	Title       string
	Description string
	Priority    string
	AssignedTo  string
	DueDate     string
}

// AddTask creates a task. Priority defaults to Medium, the assignee to
// "Unassigned"; an unparseable due date is stored as absent.
func (s *Store) AddTask(ctx context.Context, actor string, in TaskInput) (*models.Workspace, error) {
	title := normalize.Name(in.Title)
	if title == "" {
		return nil, apperr.Validation("Task title is required")
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, apperr.Validation("Invalid priority")
	}

	assignedTo := normalize.Name(in.AssignedTo)
	if assignedTo == "" {
		assignedTo = models.DefaultAssignee
	}

	ws, err := s.LoadOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	t := models.Task{
		ID:          primitive.NewObjectID().Hex(),
		Title:       title,
		Description: normalize.Name(in.Description),
		Priority:    priority,
		AssignedTo:  assignedTo,
		Comments:    []models.Comment{},
		CreatedAt:   time.Now().UTC(),
	}
	if in.DueDate != "" {
		t.DueDate = parseDueDate(in.DueDate)
	}
	ws.Tasks[t.ID] = t

	activity.Record(ws, actor, activity.ActionTaskCreated, activity.TargetTask, t.ID,
		fmt.Sprintf("%s -> %s", title, assignedTo))

	if err := s.save(ctx, ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// TaskPatch carries a partial task update. Nil fields are left untouched.
// DueDate semantics follow the legacy API: ClearDueDate unsets the date,
// otherwise a non-nil DueDate is parsed and an unparseable value is
// ignored, leaving the prior date in place.
type TaskPatch struct {
	Title        *string
	Description  *string
	AssignedTo   *string
	Priority     *string
	Done         *bool
	DueDate      *string
	ClearDueDate bool
}

// UpdateTask applies the present and valid fields of patch to a task.
func (s *Store) UpdateTask(ctx context.Context, actor, taskID string, patch TaskPatch) (*models.Workspace, error) {
	ws, err := s.LoadOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	t, ok := ws.Tasks[taskID]
	if !ok {
		return nil, apperr.NotFound("Task not found")
	}

	if patch.Title != nil && normalize.Name(*patch.Title) != "" {
		t.Title = normalize.Name(*patch.Title)
	}
	if patch.Description != nil {
		t.Description = normalize.Name(*patch.Description)
	}
	if patch.AssignedTo != nil && normalize.Name(*patch.AssignedTo) != "" {
		t.AssignedTo = normalize.Name(*patch.AssignedTo)
	}
	if patch.Priority != nil && models.ValidPriority(*patch.Priority) {
		t.Priority = *patch.Priority
	}
	if patch.Done != nil {
		t.Done = *patch.Done
	}
	if patch.ClearDueDate {
		t.DueDate = nil
	} else if patch.DueDate != nil {
		if ts := parseDueDate(*patch.DueDate); ts != nil {
			t.DueDate = ts
		}
	}
	ws.Tasks[taskID] = t

	activity.Record(ws, actor, activity.ActionTaskUpdated, activity.TargetTask, taskID, t.Title)

	if err := s.save(ctx, ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// ToggleTask flips a task's completion flag.
func (s *Store) ToggleTask(ctx context.Context, actor, taskID string) (*models.Workspace, error) {
	ws, err := s.LoadOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	t, ok := ws.Tasks[taskID]
	if !ok {
		return nil, apperr.NotFound("Task not found")
	}

	t.Done = !t.Done
	ws.Tasks[taskID] = t

	state := "undone"
	if t.Done {
		state = "done"
	}
	activity.Record(ws, actor, activity.ActionTaskToggled, activity.TargetTask, taskID,
		fmt.Sprintf("%s -> %s", t.Title, state))

	if err := s.save(ctx, ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(ctx context.Context, actor, taskID string) (*models.Workspace, error) {
	ws, err := s.LoadOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	t, ok := ws.Tasks[taskID]
	if !ok {
		return nil, apperr.NotFound("Task not found")
	}

	delete(ws.Tasks, taskID)
	activity.Record(ws, actor, activity.ActionTaskDeleted, activity.TargetTask, taskID, t.Title)

	if err := s.save(ctx, ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// AddComment appends an immutable comment to a task. A blank author falls
// back to the acting identity's name.
func (s *Store) AddComment(ctx context.Context, actor, taskID, author, text string) (*models.Workspace, error) {
	text = normalize.Name(text)
	if text == "" {
		return nil, apperr.Validation("Comment text is required")
	}
	author = normalize.Name(author)
	if author == "" {
		author = actor
	}

	ws, err := s.LoadOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	t, ok := ws.Tasks[taskID]
	if !ok {
		return nil, apperr.NotFound("Task not found")
	}

	t.Comments = append(t.Comments, models.Comment{
		ID:        primitive.NewObjectID().Hex(),
		Author:    author,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	ws.Tasks[taskID] = t

	activity.Record(ws, actor, activity.ActionTaskCommented, activity.TargetTask, taskID, t.Title)

	if err := s.save(ctx, ws); err != nil {
		return nil, err
	}
	return ws, nil
}
