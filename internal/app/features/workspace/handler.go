// internal/app/features/workspace/handler.go
package workspace

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	workspacestore "github.com/devflowhq/devflow/internal/app/store/workspace"
	"github.com/devflowhq/devflow/internal/app/system/auth"
	"github.com/devflowhq/devflow/internal/app/system/respond"
	"github.com/devflowhq/devflow/internal/app/system/timeouts"
)

// Handler is the feature-level handler for the shared workspace: the team
// roster, the task list, the chat feed, and the activity log.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	Workspaces *workspacestore.Store
	Tokens     *auth.TokenManager
}

func NewHandler(db *mongo.Database, team workspacestore.TeamInfo, tokens *auth.TokenManager, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		Workspaces: workspacestore.NewWithTeam(db, team),
		Tokens:     tokens,
	}
}

// ServeWorkspace returns the whole aggregate, creating it on first access.
func (h *Handler) ServeWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	ws, err := h.Workspaces.LoadOrCreate(ctx)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Data(w, http.StatusOK, newView(ws))
}

// actor returns the display name recorded in the activity log for the
// calling identity.
func actor(r *http.Request) string {
	su, _ := auth.CurrentUser(r)
	return su.ActorName()
}
