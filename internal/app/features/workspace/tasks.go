// internal/app/features/workspace/tasks.go
package workspace

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	workspacestore "github.com/devflowhq/devflow/internal/app/store/workspace"
	"github.com/devflowhq/devflow/internal/app/system/htmlsanitize"
	"github.com/devflowhq/devflow/internal/app/system/paging"
	"github.com/devflowhq/devflow/internal/app/system/respond"
	"github.com/devflowhq/devflow/internal/app/system/search"
	"github.com/devflowhq/devflow/internal/app/system/timeouts"
)

// ServeTasks runs the windowed task query: optional conjunctive filters,
// newest first, with the requested page clamped to the last valid page.
func (h *Handler) ServeTasks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	ws, err := h.Workspaces.LoadOrCreate(ctx)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	q := r.URL.Query()
	filtered := search.Tasks(ws.TaskList(), search.TaskFilter{
		Query:      q.Get("q"),
		Priority:   q.Get("priority"),
		Status:     q.Get("status"),
		AssignedTo: q.Get("assignedTo"),
	})

	win := paging.Forward(len(filtered), paging.ParsePage(r), paging.ParseLimit(r, paging.TaskLimit))
	respond.DataMeta(w, http.StatusOK, filtered[win.Start:win.End], respond.Meta{
		Total:      win.Total,
		Page:       win.Page,
		Limit:      win.Limit,
		TotalPages: win.TotalPages,
	})
}

// HandleAddTask creates a task.
func (h *Handler) HandleAddTask(w http.ResponseWriter, r *http.Request) {
	var req addTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	ws, err := h.Workspaces.AddTask(ctx, actor(r), workspacestore.TaskInput{
		Title:       htmlsanitize.Text(req.Title),
		Description: htmlsanitize.Text(req.Description),
		Priority:    req.Priority,
		AssignedTo:  htmlsanitize.Text(req.AssignedTo),
		DueDate:     req.DueDate,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Data(w, http.StatusCreated, newView(ws))
}

// HandleUpdateTask applies a partial update. Fields absent from the body
// are untouched; invalid optional values are ignored per field. A null or
// empty dueDate clears the date, an unparseable one leaves it as is.
func (h *Handler) HandleUpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskId")

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	ws, err := h.Workspaces.UpdateTask(ctx, actor(r), taskID, patchFromBody(body))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Data(w, http.StatusOK, newView(ws))
}

// patchFromBody converts a decoded JSON object into a task patch,
// preserving the present/absent distinction JSON null relies on.
func patchFromBody(body map[string]interface{}) workspacestore.TaskPatch {
	var patch workspacestore.TaskPatch

	if s, ok := body["title"].(string); ok {
		clean := htmlsanitize.Text(s)
		patch.Title = &clean
	}
	if s, ok := body["description"].(string); ok {
		clean := htmlsanitize.Text(s)
		patch.Description = &clean
	}
	if s, ok := body["assignedTo"].(string); ok {
		clean := htmlsanitize.Text(s)
		patch.AssignedTo = &clean
	}
	if s, ok := body["priority"].(string); ok {
		patch.Priority = &s
	}
	if b, ok := body["done"].(bool); ok {
		patch.Done = &b
	}
	if raw, present := body["dueDate"]; present {
		switch v := raw.(type) {
		case nil:
			patch.ClearDueDate = true
		case string:
			if v == "" {
				patch.ClearDueDate = true
			} else {
				patch.DueDate = &v
			}
		}
	}
	return patch
}

// HandleToggleTask flips a task's completion flag.
func (h *Handler) HandleToggleTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskId")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	ws, err := h.Workspaces.ToggleTask(ctx, actor(r), taskID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Data(w, http.StatusOK, newView(ws))
}

// HandleDeleteTask removes a task. Management only.
func (h *Handler) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskId")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	ws, err := h.Workspaces.DeleteTask(ctx, actor(r), taskID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Data(w, http.StatusOK, newView(ws))
}

// HandleAddComment appends an immutable comment to a task. The author
// defaults to the calling identity when not supplied.
func (h *Handler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskId")

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	ws, err := h.Workspaces.AddComment(ctx, actor(r), taskID,
		htmlsanitize.Text(req.User), htmlsanitize.Text(req.Text))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Data(w, http.StatusCreated, newView(ws))
}
