// Package activity appends audit-trail entries to the workspace aggregate.
//
// Every workspace mutator records exactly one entry. The log lives on the
// aggregate itself: insertion is at the front (newest first) and the slice
// is truncated to models.ActivityLogLimit immediately afterward, so it
// behaves as a bounded ring persisted with the document.
package activity

import (
	"time"

	"github.com/devflowhq/devflow/internal/domain/models"
)

// Action codes recorded by workspace mutators.
const (
	ActionMemberAdded   = "member_added"
	ActionMemberRemoved = "member_removed"
	ActionTaskCreated   = "task_created"
	ActionTaskUpdated   = "task_updated"
	ActionTaskToggled   = "task_toggled"
	ActionTaskDeleted   = "task_deleted"
	ActionTaskCommented = "task_commented"
	ActionMessageSent   = "message_sent"
)

// Target type tags.
const (
	TargetMember  = "member"
	TargetTask    = "task"
	TargetMessage = "message"
)

// Record prepends an entry to the workspace activity log and enforces the
// size bound. It never persists; the calling mutator saves the aggregate.
func Record(ws *models.Workspace, actor, action, targetType, targetID, details string) {
	entry := models.ActivityEntry{
		Actor:      actor,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}
	ws.ActivityLog = append([]models.ActivityEntry{entry}, ws.ActivityLog...)
	if len(ws.ActivityLog) > models.ActivityLogLimit {
		ws.ActivityLog = ws.ActivityLog[:models.ActivityLogLimit]
	}
}
