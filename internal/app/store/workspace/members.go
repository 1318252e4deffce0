// internal/app/store/workspace/members.go
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

// AddMember appends a member to the roster. Names are unique
// case-insensitively within the workspace.
func (s *Store) AddMember(ctx context.Context, actor, name string) (*models.Workspace, error) {
	name = normalize.Name(name)
	if name == "" {
		return nil, apperr.Validation("Member name is required")
	}

	ws, err := s.LoadOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	folded := normalize.Fold(name)
	for _, m := range ws.Members {
		if normalize.Fold(m.Name) == folded {
			return nil, apperr.Conflict("Member already exists")
		}
	}

	m := models.Member{
		ID:      primitive.NewObjectID().Hex(),
		Name:    name,
		AddedAt: time.Now().UTC(),
	}
	ws.Members[m.ID] = m

	activity.Record(ws, actor, activity.ActionMemberAdded, activity.TargetMember, "",
		fmt.Sprintf("Added member %s", name))

	if err := s.save(ctx, ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// RemoveMember deletes a member and cascades to every task whose assignee
// equals the removed name. The match is by name value: tasks assigned to
// other names are untouched.
func (s *Store) RemoveMember(ctx context.Context, actor, memberID string) (*models.Workspace, error) {
	ws, err := s.LoadOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	m, ok := ws.Members[memberID]
	if !ok {
		return nil, apperr.NotFound("Member not found")
	}

	delete(ws.Members, memberID)
	for id, t := range ws.Tasks {
		if t.AssignedTo == m.Name {
			delete(ws.Tasks, id)
		}
	}

	activity.Record(ws, actor, activity.ActionMemberRemoved, activity.TargetMember, memberID, m.Name)

	if err := s.save(ctx, ws); err != nil {
		return nil, err
	}
	return ws, nil
}
