// internal/app/features/workspace/activity.go
package workspace

import (
	"context"
	"net/http"

	"github.com/devflowhq/devflow/internal/app/system/paging"
	"github.com/devflowhq/devflow/internal/app/system/respond"
	"github.com/devflowhq/devflow/internal/app/system/search"
	"github.com/devflowhq/devflow/internal/app/system/timeouts"
)

// ServeActivity returns a page of the audit trail, filtered by action code
// and free text. The log is stored newest first, so pages read forward.
// Management only.
func (h *Handler) ServeActivity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	ws, err := h.Workspaces.LoadOrCreate(ctx)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	q := r.URL.Query()
	filtered := search.Activity(ws.ActivityLog, search.ActivityFilter{
		Action: q.Get("action"),
		Query:  q.Get("q"),
	})

	win := paging.Forward(len(filtered), paging.ParsePage(r), paging.ParseLimit(r, paging.ActivityLimit))
	respond.DataMeta(w, http.StatusOK, filtered[win.Start:win.End], respond.Meta{
		Total:      win.Total,
		Page:       win.Page,
		Limit:      win.Limit,
		TotalPages: win.TotalPages,
	})
}
