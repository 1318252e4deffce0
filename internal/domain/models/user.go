// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user account can hold. Role gates the management-only surface
// (user administration, member add/remove, task delete, activity log).
const (
	RoleManagement = "management"
	RoleTeamMember = "team_member"
)

// ValidRole reports whether role is one of the allowed account roles.
func ValidRole(role string) bool {
	return role == RoleManagement || role == RoleTeamMember
}

// User represents a DevFlow account.
//
// Password holds the bcrypt hash of the user's secret. Records imported
// from the legacy deployment may still hold a plain-text secret; those are
// rehashed on the first successful login (see userstore.Authenticate).
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Profile is the client-facing shape of a User, never carrying the secret.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

// Profile returns the client-facing view of u. A missing stored role is
// reported as team_member, matching the backfill applied at login.
func (u User) Profile() Profile {
	role := u.Role
	if role == "" {
		role = RoleTeamMember
	}
	return Profile{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  role,
		Phone: u.Phone,
	}
}
