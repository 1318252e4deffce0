package activity

import (
	"fmt"
	"testing"

	"github.com/devflowhq/devflow/internal/domain/models"
)

func TestRecord_NewestFirst(t *testing.T) {
	ws := &models.Workspace{}

	Record(ws, "Priya Mehta", ActionTaskCreated, TargetTask, "t1", "Fix login bug -> Priya Mehta")
	Record(ws, "Arjun Rao", ActionMemberAdded, TargetMember, "m1", "Added member Dev Kapoor")

	if len(ws.ActivityLog) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ws.ActivityLog))
	}
	if ws.ActivityLog[0].Action != ActionMemberAdded {
		t.Errorf("expected newest entry first, got %q", ws.ActivityLog[0].Action)
	}
	if ws.ActivityLog[1].Action != ActionTaskCreated {
		t.Errorf("expected oldest entry last, got %q", ws.ActivityLog[1].Action)
	}

	got := ws.ActivityLog[0]
	if got.Actor != "Arjun Rao" || got.TargetType != TargetMember || got.TargetID != "m1" {
		t.Errorf("entry fields not recorded: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestRecord_EnforcesBound(t *testing.T) {
	ws := &models.Workspace{}

	for i := 0; i < models.ActivityLogLimit+25; i++ {
		Record(ws, "Priya Mehta", ActionMessageSent, TargetMessage, fmt.Sprintf("msg-%d", i), "chatter")
	}

	if len(ws.ActivityLog) != models.ActivityLogLimit {
		t.Fatalf("expected log bounded to %d, got %d", models.ActivityLogLimit, len(ws.ActivityLog))
	}

	// The newest entry survives at the front; the oldest 25 fell off the end.
	if got := ws.ActivityLog[0].TargetID; got != fmt.Sprintf("msg-%d", models.ActivityLogLimit+24) {
		t.Errorf("front of log = %q, want newest entry", got)
	}
	if got := ws.ActivityLog[len(ws.ActivityLog)-1].TargetID; got != "msg-25" {
		t.Errorf("back of log = %q, want msg-25", got)
	}
}
