// internal/app/features/workspace/members.go
package workspace

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devflowhq/devflow/internal/app/system/htmlsanitize"
	"github.com/devflowhq/devflow/internal/app/system/respond"
	"github.com/devflowhq/devflow/internal/app/system/timeouts"
)

// HandleAddMember adds a name to the roster. Management only.
func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	ws, err := h.Workspaces.AddMember(ctx, actor(r), htmlsanitize.Text(req.Name))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Data(w, http.StatusCreated, newView(ws))
}

// HandleRemoveMember deletes a roster entry and cascades to its tasks.
// Management only.
func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberId")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	ws, err := h.Workspaces.RemoveMember(ctx, actor(r), memberID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Data(w, http.StatusOK, newView(ws))
}
