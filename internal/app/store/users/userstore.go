// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devflowhq/devflow/internal/app/system/apperr"
	"github.com/devflowhq/devflow/internal/app/system/authutil"
	"github.com/devflowhq/devflow/internal/app/system/normalize"
	"github.com/devflowhq/devflow/internal/domain/models"
)

// Store is the identity store over the users collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// EnsureIndexes creates the unique email index that backs registration's
// duplicate check.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_user_email"),
	})
	return err
}

// Create registers a new account. The secret is stored only as a bcrypt
// hash; the returned User carries it, so callers must render a Profile.
func (s *Store) Create(ctx context.Context, name, email, password, role, phone string) (models.User, error) {
	name = normalize.Name(name)
	email = normalize.Email(email)

	if name == "" || email == "" || password == "" || role == "" {
		return models.User{}, apperr.Validation("Name, email, password and role are required")
	}
	if !models.ValidRole(role) {
		return models.User{}, apperr.Validation("Invalid role selected")
	}

	hash, err := authutil.HashPassword(password)
	if err != nil {
		return models.User{}, apperr.Storage(err)
	}

	now := time.Now().UTC()
	u := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  hash,
		Role:      role,
		Phone:     normalize.Name(phone),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, apperr.Conflict("Email already registered")
		}
		return models.User{}, apperr.Storage(err)
	}
	return u, nil
}

// Authenticate verifies credentials and the requested role.
//
// Legacy accounts may hold a plain-text secret; a successful plain-text
// match rehashes the secret to bcrypt and backfills a missing role to
// team_member as a side effect, so each legacy secret is accepted at most
// once in its plain form.
func (s *Store) Authenticate(ctx context.Context, email, password, role string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, apperr.Auth("Invalid email or password")
		}
		return models.User{}, apperr.Storage(err)
	}

	if !models.ValidRole(role) {
		return models.User{}, apperr.Validation("Please select a valid role")
	}

	effectiveRole := u.Role
	if effectiveRole == "" {
		effectiveRole = models.RoleTeamMember
	}
	if effectiveRole != role {
		return models.User{}, apperr.Auth("Role does not match this account")
	}

	hashed := authutil.IsBcryptHash(u.Password)
	valid := false
	if hashed {
		valid = authutil.VerifyPassword(u.Password, password)
	} else {
		valid = u.Password == password
	}
	if !valid {
		return models.User{}, apperr.Auth("Invalid email or password")
	}

	if !hashed {
		rehash, err := authutil.HashPassword(password)
		if err != nil {
			return models.User{}, apperr.Storage(err)
		}
		set := bson.M{"password": rehash, "updated_at": time.Now().UTC()}
		if u.Role == "" {
			set["role"] = models.RoleTeamMember
		}
		if _, err := s.c.UpdateByID(ctx, u.ID, bson.M{"$set": set}); err != nil {
			return models.User{}, apperr.Storage(err)
		}
		u.Password = rehash
	}

	u.Role = effectiveRole
	return u, nil
}

// GetByID retrieves a user by its hex id.
func (s *Store) GetByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, apperr.NotFound("User not found")
	}

	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, apperr.NotFound("User not found")
		}
		return models.User{}, apperr.Storage(err)
	}
	return u, nil
}

// List returns all users, newest first.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, apperr.Storage(err)
	}
	return users, nil
}

// Delete removes a user by hex id.
func (s *Store) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("User not found")
	}

	res, err := s.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperr.Storage(err)
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}

// ChangePassword replaces the stored secret after verifying the current
// one. New passwords must meet the minimum length.
func (s *Store) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	if len(newPassword) < authutil.MinPasswordLen {
		return apperr.Validation("Current password and new password (min 6 chars) are required")
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !authutil.VerifyPassword(u.Password, currentPassword) {
		return apperr.Auth("Current password is incorrect")
	}

	hash, err := authutil.HashPassword(newPassword)
	if err != nil {
		return apperr.Storage(err)
	}
	_, err = s.c.UpdateByID(ctx, u.ID, bson.M{"$set": bson.M{
		"password":   hash,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// EnsureAdmin creates a management account with the given credentials if no
// user holds that email yet. Used by startup to bootstrap a first login.
func (s *Store) EnsureAdmin(ctx context.Context, name, email, password string) error {
	email = normalize.Email(email)
	if email == "" {
		return nil
	}

	err := s.c.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.Storage(err)
	}

	_, err = s.Create(ctx, name, email, password, models.RoleManagement, "")
	if err != nil && apperr.KindOf(err) == apperr.KindConflict {
		// Raced another instance; the account exists.
		return nil
	}
	return err
}
