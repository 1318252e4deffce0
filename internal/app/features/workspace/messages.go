// internal/app/features/workspace/messages.go
package workspace

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/devflowhq/devflow/internal/app/system/htmlsanitize"
	"github.com/devflowhq/devflow/internal/app/system/paging"
	"github.com/devflowhq/devflow/internal/app/system/respond"
	"github.com/devflowhq/devflow/internal/app/system/timeouts"
	"github.com/devflowhq/devflow/internal/domain/models"
)

// ServeMessages returns a page of the chat feed, paging backwards from the
// newest message: page 1 is the most recent window, in chronological order
// within the page.
func (h *Handler) ServeMessages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	ws, err := h.Workspaces.LoadOrCreate(ctx)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	messages := ws.Messages
	if messages == nil {
		messages = []models.Message{}
	}

	win := paging.Backward(len(messages), paging.ParsePage(r), paging.ParseLimit(r, paging.MessageLimit))
	respond.DataMeta(w, http.StatusOK, messages[win.Start:win.End], respond.Meta{
		Total:      win.Total,
		Page:       win.Page,
		Limit:      win.Limit,
		TotalPages: win.TotalPages,
	})
}

// HandleAddMessage appends a chat message. The response carries only the
// updated message collection, not the whole aggregate.
func (h *Handler) HandleAddMessage(w http.ResponseWriter, r *http.Request) {
	var req addMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	messages, err := h.Workspaces.AddMessage(ctx, actor(r),
		htmlsanitize.Text(req.User), htmlsanitize.Text(req.Text))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Data(w, http.StatusCreated, messages)
}
