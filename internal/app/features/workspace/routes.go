// internal/app/features/workspace/routes.go
package workspace

import (
	"github.com/go-chi/chi/v5"

	"github.com/devflowhq/devflow/internal/app/policy/workspacepolicy"
	"github.com/devflowhq/devflow/internal/app/system/auth"
)

// Routes mounts the workspace routes. Every route requires a signed-in
// caller; roster management, task deletion, and the activity log are
// additionally gated to management.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn(h.Tokens))

	r.Get("/", h.ServeWorkspace)
	r.Get("/tasks", h.ServeTasks)
	r.Post("/tasks", h.HandleAddTask)
	r.Patch("/tasks/{taskId}", h.HandleUpdateTask)
	r.Patch("/tasks/{taskId}/toggle", h.HandleToggleTask)
	r.Post("/tasks/{taskId}/comments", h.HandleAddComment)
	r.Get("/messages", h.ServeMessages)
	r.Post("/messages", h.HandleAddMessage)

	r.Group(func(mr chi.Router) {
		mr.Use(auth.RequireRole(workspacepolicy.ManageRosterRoles()...))
		mr.Post("/members", h.HandleAddMember)
		mr.Delete("/members/{memberId}", h.HandleRemoveMember)
	})

	r.Group(func(mr chi.Router) {
		mr.Use(auth.RequireRole(workspacepolicy.DeleteTaskRoles()...))
		mr.Delete("/tasks/{taskId}", h.HandleDeleteTask)
	})

	r.Group(func(mr chi.Router) {
		mr.Use(auth.RequireRole(workspacepolicy.ViewActivityRoles()...))
		mr.Get("/activity", h.ServeActivity)
	})

	return r
}
