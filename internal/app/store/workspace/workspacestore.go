// internal/app/store/workspace/workspacestore.go
//
// Repository for the singleton workspace aggregate. Every mutator is a
// read-modify-write against the whole document: load the aggregate, mutate
// the in-memory copy, record an activity entry, and persist with a
// compare-and-swap on the version field. A CAS miss means another request
// saved in between; it surfaces as a retryable conflict instead of
// silently discarding the earlier write.
package workspacestore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devflowhq/devflow/internal/app/system/apperr"
	"github.com/devflowhq/devflow/internal/domain/models"
)

// Default team display metadata, used when config leaves them unset.
const (
	DefaultTeamName      = "DevFlow Team"
	DefaultTeamHead      = "Rahul Sharma"
	DefaultLeaderContact = "rahulsharma@devflow.com"
)

// legacyMemberNames is the placeholder roster an early deployment seeded.
// CleanupLegacySeed purges a workspace still carrying exactly this set.
var legacyMemberNames = map[string]struct{}{
	"Rahul Sharma": {},
	"Ananya Singh": {},
	"Vikas Patel":  {},
}

// TeamInfo overrides the workspace display metadata used at creation.
// Zero-value fields fall back to the package defaults.
type TeamInfo struct {
	Name    string
	Head    string
	Contact string
}

// Store is the repository for the singleton workspace aggregate.
type Store struct {
	c    *mongo.Collection
	team TeamInfo
}

func New(db *mongo.Database) *Store {
	return NewWithTeam(db, TeamInfo{})
}

func NewWithTeam(db *mongo.Database, team TeamInfo) *Store {
	if team.Name == "" {
		team.Name = DefaultTeamName
	}
	if team.Head == "" {
		team.Head = DefaultTeamHead
	}
	if team.Contact == "" {
		team.Contact = DefaultLeaderContact
	}
	return &Store{c: db.Collection("workspaces"), team: team}
}

// LoadOrCreate returns the singleton workspace, creating an empty one
// atomically if none exists yet. The upsert makes concurrent first loads
// converge on one document.
func (s *Store) LoadOrCreate(ctx context.Context) (*models.Workspace, error) {
	now := time.Now().UTC()
	initial := bson.M{
		"_id":            primitive.NewObjectID(),
		"version":        int64(0),
		"team_name":      s.team.Name,
		"team_head":      s.team.Head,
		"leader_contact": s.team.Contact,
		"members":        bson.M{},
		"tasks":          bson.M{},
		"messages":       bson.A{},
		"activity_log":   bson.A{},
		"created_at":     now,
		"updated_at":     now,
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var ws models.Workspace
	err := s.c.FindOneAndUpdate(ctx, bson.M{}, bson.M{"$setOnInsert": initial}, opts).Decode(&ws)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	if ws.Members == nil {
		ws.Members = map[string]models.Member{}
	}
	if ws.Tasks == nil {
		ws.Tasks = map[string]models.Task{}
	}
	return &ws, nil
}

// save persists the whole aggregate with a compare-and-swap on the version
// loaded into ws. On success ws carries the incremented version.
func (s *Store) save(ctx context.Context, ws *models.Workspace) error {
	loaded := ws.Version
	ws.Version = loaded + 1
	ws.UpdatedAt = time.Now().UTC()

	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": ws.ID, "version": loaded}, ws)
	if err != nil {
		ws.Version = loaded
		return apperr.Storage(err)
	}
	if res.MatchedCount == 0 {
		ws.Version = loaded
		return apperr.Conflict("Workspace was modified concurrently, please retry")
	}
	return nil
}

// CleanupLegacySeed purges the placeholder roster an early deployment
// seeded: if every member name matches the legacy set, the roster and any
// tasks assigned to those names are removed. Idempotent; a no-op when no
// workspace exists or the roster is already clean.
func (s *Store) CleanupLegacySeed(ctx context.Context) error {
	var ws models.Workspace
	err := s.c.FindOne(ctx, bson.M{}).Decode(&ws)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil
		}
		return apperr.Storage(err)
	}

	if !hasOnlyLegacyMembers(ws.Members) {
		return nil
	}

	ws.Members = map[string]models.Member{}
	for id, t := range ws.Tasks {
		if _, legacy := legacyMemberNames[t.AssignedTo]; legacy {
			delete(ws.Tasks, id)
		}
	}
	return s.save(ctx, &ws)
}

func hasOnlyLegacyMembers(members map[string]models.Member) bool {
	if len(members) == 0 {
		return false
	}
	for _, m := range members {
		if _, ok := legacyMemberNames[m.Name]; !ok {
			return false
		}
	}
	return true
}
