// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/devflowhq/devflow/internal/app/system/normalize"
	"github.com/devflowhq/devflow/internal/app/system/respond"
)

// SessionUser is the verified identity injected into r.Context().
type SessionUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// ActorName is the display name recorded in the activity log for this
// identity: name, then email, then a fixed fallback.
func (u *SessionUser) ActorName() string {
	if u == nil {
		return "Unknown User"
	}
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return "Unknown User"
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user from context and a found flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects an identity directly, bypassing token verification.
// Only handler tests use this.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// RequireSignedIn verifies the Authorization bearer credential with tm and
// injects the identity into context. Requests without a valid credential
// are rejected with a 401 envelope before any handler runs.
func RequireSignedIn(tm *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := CurrentUser(r); ok {
				// Already injected (tests, nested groups).
				next.ServeHTTP(w, r)
				return
			}

			scheme, credential, found := strings.Cut(r.Header.Get("Authorization"), " ")
			if !found || scheme != "Bearer" || credential == "" {
				respond.Fail(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			u, err := tm.Verify(credential)
			if err != nil {
				respond.Fail(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			next.ServeHTTP(w, withUser(r, u))
		})
	}
}

// RequireRole ensures the context identity holds one of the allowed roles.
// Mount after RequireSignedIn; a missing identity gets 401, a wrong role
// gets 403. Both short-circuit before any mutation is attempted.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[normalize.Fold(role)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				respond.Fail(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if _, has := set[normalize.Fold(u.Role)]; !has {
				respond.Fail(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
