// internal/app/store/users/patch.go
package userstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devflowhq/devflow/internal/app/system/apperr"
	"github.com/devflowhq/devflow/internal/app/system/normalize"
	"github.com/devflowhq/devflow/internal/domain/models"
)

// profileField describes one patchable profile field: how to validate and
// normalize an incoming value, and the role required to set it. The patch
// is applied uniformly off this table; fields that fail validation or role
// checks are skipped silently rather than failing the request.
type profileField struct {
	requiredRole string // empty means any authenticated caller
	value        func(raw interface{}) (string, bool)
}

var profileFields = map[string]profileField{
	"name": {
		value: func(raw interface{}) (string, bool) {
			s, ok := raw.(string)
			if !ok || normalize.Name(s) == "" {
				return "", false
			}
			return normalize.Name(s), true
		},
	},
	"phone": {
		value: func(raw interface{}) (string, bool) {
			s, ok := raw.(string)
			if !ok {
				return "", false
			}
			return normalize.Name(s), true
		},
	},
	"role": {
		requiredRole: models.RoleManagement,
		value: func(raw interface{}) (string, bool) {
			s, ok := raw.(string)
			if !ok || !models.ValidRole(s) {
				return "", false
			}
			return s, true
		},
	},
}

// UpdateProfile applies the recognized, valid fields of patch to the user
// and returns the updated record. Unrecognized fields, invalid values, and
// fields the actor's role cannot set are ignored.
func (s *Store) UpdateProfile(ctx context.Context, id, actorRole string, patch map[string]interface{}) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, apperr.NotFound("User not found")
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for field, raw := range patch {
		spec, known := profileFields[field]
		if !known {
			continue
		}
		if spec.requiredRole != "" && actorRole != spec.requiredRole {
			continue
		}
		if v, ok := spec.value(raw); ok {
			set[field] = v
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err = s.c.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, apperr.NotFound("User not found")
		}
		return models.User{}, apperr.Storage(err)
	}
	return u, nil
}
