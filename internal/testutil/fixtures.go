package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devflowhq/devflow/internal/app/system/authutil"
	"github.com/devflowhq/devflow/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with a bcrypt-hashed password.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, password, role string) models.User {
	f.t.Helper()

	hash, err := authutil.HashPassword(password)
	if err != nil {
		f.t.Fatalf("failed to hash fixture password: %v", err)
	}
	return f.insertUser(ctx, name, email, hash, role)
}

// CreateLegacyUser inserts a user the way the old Node deployment stored
// them: plaintext password and no role field.
func (f *Fixtures) CreateLegacyUser(ctx context.Context, name, email, password string) models.User {
	f.t.Helper()
	return f.insertUser(ctx, name, email, password, "")
}

func (f *Fixtures) insertUser(ctx context.Context, name, email, password, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// SeedWorkspace inserts a workspace document directly, bypassing the store.
// Useful for shaping pre-migration or pre-populated states.
func (f *Fixtures) SeedWorkspace(ctx context.Context, ws models.Workspace) models.Workspace {
	f.t.Helper()

	now := time.Now().UTC()
	if ws.ID.IsZero() {
		ws.ID = primitive.NewObjectID()
	}
	if ws.CreatedAt.IsZero() {
		ws.CreatedAt = now
	}
	if ws.UpdatedAt.IsZero() {
		ws.UpdatedAt = now
	}
	if ws.Members == nil {
		ws.Members = map[string]models.Member{}
	}
	if ws.Tasks == nil {
		ws.Tasks = map[string]models.Task{}
	}

	if _, err := f.db.Collection("workspaces").InsertOne(ctx, ws); err != nil {
		f.t.Fatalf("failed to seed workspace: %v", err)
	}
	return ws
}

// Member builds a roster entry with a fresh id.
func Member(name string) models.Member {
	return models.Member{
		ID:      primitive.NewObjectID().Hex(),
		Name:    name,
		AddedAt: time.Now().UTC(),
	}
}

// TaskFor builds a task assigned to the given member name.
func TaskFor(title, assignee string) models.Task {
	return models.Task{
		ID:         primitive.NewObjectID().Hex(),
		Title:      title,
		Priority:   models.PriorityMedium,
		AssignedTo: assignee,
		Comments:   []models.Comment{},
		CreatedAt:  time.Now().UTC(),
	}
}
