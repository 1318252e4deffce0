package workspacestore

import (
	"testing"

	"github.com/devflowhq/devflow/internal/app/system/activity"
	"github.com/devflowhq/devflow/internal/app/system/apperr"
	"github.com/devflowhq/devflow/internal/testutil"
)

func TestAddMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	ws, err := s.AddMember(ctx, "Priya Mehta", "  Dev Kapoor  ")
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	members := ws.MemberList()
	if len(members) != 1 || members[0].Name != "Dev Kapoor" {
		t.Fatalf("roster = %+v, want one trimmed member", members)
	}
	if members[0].ID == "" || members[0].AddedAt.IsZero() {
		t.Error("expected generated id and timestamp")
	}

	entry := ws.ActivityLog[0]
	if entry.Action != activity.ActionMemberAdded || entry.Actor != "Priya Mehta" {
		t.Errorf("activity entry = %+v", entry)
	}
	if entry.Details != "Added member Dev Kapoor" {
		t.Errorf("details = %q", entry.Details)
	}
}

func TestAddMember_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := New(db).AddMember(ctx, "Priya Mehta", "   ")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error for blank name, got %v", err)
	}
}

func TestAddMember_DuplicateCaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	if _, err := s.AddMember(ctx, "Priya Mehta", "Dev Kapoor"); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	_, err := s.AddMember(ctx, "Priya Mehta", "dev kapoor")
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("expected conflict for case-folded duplicate, got %v", err)
	}
}

func TestRemoveMember_CascadesTasksByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	ws, err := s.AddMember(ctx, "Priya Mehta", "Dev Kapoor")
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	memberID := ws.MemberList()[0].ID

	if _, err := s.AddTask(ctx, "Priya Mehta", TaskInput{Title: "His task", AssignedTo: "Dev Kapoor"}); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if _, err := s.AddTask(ctx, "Priya Mehta", TaskInput{Title: "Someone else's", AssignedTo: "Priya Mehta"}); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	ws, err = s.RemoveMember(ctx, "Priya Mehta", memberID)
	if err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}

	if len(ws.Members) != 0 {
		t.Errorf("expected empty roster, got %d", len(ws.Members))
	}
	tasks := ws.TaskList()
	if len(tasks) != 1 || tasks[0].Title != "Someone else's" {
		t.Errorf("expected only the unrelated task to survive, got %+v", tasks)
	}

	entry := ws.ActivityLog[0]
	if entry.Action != activity.ActionMemberRemoved || entry.TargetID != memberID || entry.Details != "Dev Kapoor" {
		t.Errorf("activity entry = %+v", entry)
	}
}

func TestRemoveMember_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := New(db).RemoveMember(ctx, "Priya Mehta", "no-such-id")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestMutationsPersist(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	if _, err := s.AddMember(ctx, "Priya Mehta", "Dev Kapoor"); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	// A fresh store over the same database sees the saved aggregate.
	ws, err := New(db).LoadOrCreate(ctx)
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if len(ws.Members) != 1 {
		t.Errorf("expected persisted member, got %d", len(ws.Members))
	}
	if len(ws.ActivityLog) != 1 {
		t.Errorf("expected persisted activity entry, got %d", len(ws.ActivityLog))
	}
}
