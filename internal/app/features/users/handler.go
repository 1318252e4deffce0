// internal/app/features/users/handler.go
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/devflowhq/devflow/internal/app/store/users"
	"github.com/devflowhq/devflow/internal/app/system/auth"
	"github.com/devflowhq/devflow/internal/app/system/htmlsanitize"
	"github.com/devflowhq/devflow/internal/app/system/respond"
	"github.com/devflowhq/devflow/internal/app/system/timeouts"
	"github.com/devflowhq/devflow/internal/domain/models"
)

// Handler is the feature-level handler for user accounts.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	Users  *userstore.Store
	Tokens *auth.TokenManager
}

func NewHandler(db *mongo.Database, tokens *auth.TokenManager, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		Users:  userstore.New(db),
		Tokens: tokens,
	}
}

// HandleRegister creates an account and returns the profile.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	u, err := h.Users.Create(ctx, htmlsanitize.Text(req.Name), req.Email, req.Password, req.Role, req.Phone)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.DataMessage(w, http.StatusCreated, "User created successfully", u.Profile())
}

// HandleLogin verifies credentials and issues a 7-day session token.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	u, err := h.Users.Authenticate(ctx, req.Email, req.Password, req.Role)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	token, err := h.Tokens.Issue(auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	})
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "Could not create session")
		return
	}

	respond.DataMessage(w, http.StatusOK, fmt.Sprintf("Welcome %s", u.Name), loginResponse{
		Token: token,
		User:  u.Profile(),
	})
}

// ServeMe returns the calling identity's profile.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	su, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	u, err := h.Users.GetByID(ctx, su.ID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Data(w, http.StatusOK, u.Profile())
}

// HandleUpdateMe applies a partial profile update. Only recognized, valid
// fields are applied; the role field additionally requires a management
// caller. Everything else in the body is ignored silently.
func (h *Handler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	su, _ := auth.CurrentUser(r)

	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if raw, ok := patch["name"].(string); ok {
		patch["name"] = htmlsanitize.Text(raw)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	u, err := h.Users.UpdateProfile(ctx, su.ID, su.Role, patch)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.DataMessage(w, http.StatusOK, "Profile updated", u.Profile())
}

// HandleChangePassword replaces the caller's secret.
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	su, _ := auth.CurrentUser(r)

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	if err := h.Users.ChangePassword(ctx, su.ID, req.CurrentPassword, req.NewPassword); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Message(w, http.StatusOK, "Password changed successfully")
}

// ServeList returns all accounts, newest first. Management only.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	profiles := make([]models.Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	respond.Data(w, http.StatusOK, profiles)
}

// HandleDelete removes an account by id. Management only.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Message(w, http.StatusOK, "User deleted successfully")
}
