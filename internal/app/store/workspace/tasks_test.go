package workspacestore

import (
	"testing"
	"time"

	"github.com/devflowhq/devflow/internal/app/system/activity"
	"github.com/devflowhq/devflow/internal/app/system/apperr"
	"github.com/devflowhq/devflow/internal/domain/models"
	"github.com/devflowhq/devflow/internal/testutil"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantNil bool
	}{
		{name: "rfc3339", raw: "2026-03-15T10:00:00Z"},
		{name: "date only", raw: "2026-03-15"},
		{name: "garbage", raw: "next tuesday", wantNil: true},
		{name: "empty", raw: "", wantNil: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDueDate(tt.raw)
			if (got == nil) != tt.wantNil {
				t.Errorf("parseDueDate(%q) = %v, wantNil %v", tt.raw, got, tt.wantNil)
			}
		})
	}
}

func TestAddTask_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	ws, err := s.AddTask(ctx, "Priya Mehta", TaskInput{Title: "  Fix login bug  "})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	tasks := ws.TaskList()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	task := tasks[0]
	if task.Title != "Fix login bug" {
		t.Errorf("title = %q", task.Title)
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want default Medium", task.Priority)
	}
	if task.AssignedTo != models.DefaultAssignee {
		t.Errorf("assignee = %q, want %q", task.AssignedTo, models.DefaultAssignee)
	}
	if task.Done {
		t.Error("new task must start undone")
	}
	if task.DueDate != nil {
		t.Error("due date must be absent when not provided")
	}
	if task.Comments == nil || len(task.Comments) != 0 {
		t.Error("expected empty comment list")
	}

	entry := ws.ActivityLog[0]
	if entry.Action != activity.ActionTaskCreated || entry.TargetID != task.ID {
		t.Errorf("activity entry = %+v", entry)
	}
	if entry.Details != "Fix login bug -> Unassigned" {
		t.Errorf("details = %q", entry.Details)
	}
}

func TestAddTask_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	if _, err := s.AddTask(ctx, "Priya", TaskInput{Title: "  "}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error for blank title, got %v", err)
	}
	if _, err := s.AddTask(ctx, "Priya", TaskInput{Title: "T", Priority: "Critical"}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error for bad priority, got %v", err)
	}
}

func TestAddTask_DueDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	ws, err := s.AddTask(ctx, "Priya", TaskInput{Title: "Dated", DueDate: "2026-03-15"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	task := ws.TaskList()[0]
	if task.DueDate == nil {
		t.Fatal("expected due date set")
	}
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !task.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %v", task.DueDate, want)
	}

	// Unparseable raw values are stored as absent, not rejected.
	ws, err = s.AddTask(ctx, "Priya", TaskInput{Title: "Badly dated", DueDate: "soonish"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	for _, got := range ws.TaskList() {
		if got.Title == "Badly dated" && got.DueDate != nil {
			t.Error("unparseable due date must be stored as absent")
		}
	}
}

func TestUpdateTask(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	ws, err := s.AddTask(ctx, "Priya", TaskInput{Title: "Original", Description: "desc", AssignedTo: "Dev Kapoor", DueDate: "2026-03-15"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	taskID := ws.TaskList()[0].ID

	ws, err = s.UpdateTask(ctx, "Priya", taskID, TaskPatch{
		Title:    strptr("Renamed"),
		Priority: strptr(models.PriorityUrgent),
		Done:     boolptr(true),
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	task := ws.Tasks[taskID]
	if task.Title != "Renamed" || task.Priority != models.PriorityUrgent || !task.Done {
		t.Errorf("patched task = %+v", task)
	}
	if task.Description != "desc" || task.AssignedTo != "Dev Kapoor" {
		t.Error("absent fields must stay untouched")
	}
	if entry := ws.ActivityLog[0]; entry.Action != activity.ActionTaskUpdated || entry.Details != "Renamed" {
		t.Errorf("activity entry = %+v", entry)
	}
}

func TestUpdateTask_FieldRules(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	ws, err := s.AddTask(ctx, "Priya", TaskInput{Title: "Original", AssignedTo: "Dev Kapoor", DueDate: "2026-03-15"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	taskID := ws.TaskList()[0].ID

	// Blank title and assignee, and an invalid priority, are skipped.
	ws, err = s.UpdateTask(ctx, "Priya", taskID, TaskPatch{
		Title:      strptr("   "),
		AssignedTo: strptr(""),
		Priority:   strptr("Critical"),
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	task := ws.Tasks[taskID]
	if task.Title != "Original" || task.AssignedTo != "Dev Kapoor" || task.Priority != models.PriorityMedium {
		t.Errorf("invalid patch values applied: %+v", task)
	}

	// An unparseable due date leaves the prior date in place.
	ws, err = s.UpdateTask(ctx, "Priya", taskID, TaskPatch{DueDate: strptr("whenever")})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if ws.Tasks[taskID].DueDate == nil {
		t.Error("unparseable due date must not clear the existing one")
	}

	// ClearDueDate unsets it.
	ws, err = s.UpdateTask(ctx, "Priya", taskID, TaskPatch{ClearDueDate: true})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if ws.Tasks[taskID].DueDate != nil {
		t.Error("ClearDueDate must unset the due date")
	}

	// Description may be set to empty explicitly.
	ws, err = s.UpdateTask(ctx, "Priya", taskID, TaskPatch{Description: strptr("")})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if ws.Tasks[taskID].Description != "" {
		t.Error("empty description must be applied")
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := New(db).UpdateTask(ctx, "Priya", "no-such-task", TaskPatch{Done: boolptr(true)})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestToggleTask(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	ws, err := s.AddTask(ctx, "Priya", TaskInput{Title: "Flip me"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	taskID := ws.TaskList()[0].ID

	ws, err = s.ToggleTask(ctx, "Priya", taskID)
	if err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if !ws.Tasks[taskID].Done {
		t.Error("expected task done after first toggle")
	}
	if entry := ws.ActivityLog[0]; entry.Action != activity.ActionTaskToggled || entry.Details != "Flip me -> done" {
		t.Errorf("activity entry = %+v", entry)
	}

	ws, err = s.ToggleTask(ctx, "Priya", taskID)
	if err != nil {
		t.Fatalf("second ToggleTask failed: %v", err)
	}
	if ws.Tasks[taskID].Done {
		t.Error("expected task undone after second toggle")
	}
	if entry := ws.ActivityLog[0]; entry.Details != "Flip me -> undone" {
		t.Errorf("details = %q", entry.Details)
	}
}

func TestDeleteTask(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	ws, err := s.AddTask(ctx, "Priya", TaskInput{Title: "Doomed"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	taskID := ws.TaskList()[0].ID

	ws, err = s.DeleteTask(ctx, "Priya", taskID)
	if err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if len(ws.Tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(ws.Tasks))
	}
	if entry := ws.ActivityLog[0]; entry.Action != activity.ActionTaskDeleted || entry.Details != "Doomed" {
		t.Errorf("activity entry = %+v", entry)
	}

	if _, err := s.DeleteTask(ctx, "Priya", taskID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

func TestAddComment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	ws, err := s.AddTask(ctx, "Priya Mehta", TaskInput{Title: "Discussed"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	taskID := ws.TaskList()[0].ID

	ws, err = s.AddComment(ctx, "Priya Mehta", taskID, "Dev Kapoor", "looks good")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	comments := ws.Tasks[taskID].Comments
	if len(comments) != 1 || comments[0].Author != "Dev Kapoor" || comments[0].Text != "looks good" {
		t.Errorf("comments = %+v", comments)
	}
	if entry := ws.ActivityLog[0]; entry.Action != activity.ActionTaskCommented || entry.Details != "Discussed" {
		t.Errorf("activity entry = %+v", entry)
	}

	// A blank author falls back to the acting identity.
	ws, err = s.AddComment(ctx, "Priya Mehta", taskID, "", "second")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	comments = ws.Tasks[taskID].Comments
	if comments[1].Author != "Priya Mehta" {
		t.Errorf("fallback author = %q", comments[1].Author)
	}

	if _, err := s.AddComment(ctx, "Priya Mehta", taskID, "Dev", "  "); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error for blank text, got %v", err)
	}
	if _, err := s.AddComment(ctx, "Priya Mehta", "no-such-task", "Dev", "text"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}
