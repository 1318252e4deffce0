// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"

	"github.com/devflowhq/devflow/internal/app/policy/workspacepolicy"
	"github.com/devflowhq/devflow/internal/app/system/auth"
)

// Routes mounts the user routes. Typically: r.Mount("/api/users", users.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Public: registration and login.
	r.Post("/", h.HandleRegister)
	r.Post("/signup", h.HandleRegister)
	r.Post("/login", h.HandleLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn(h.Tokens))

		pr.Get("/me", h.ServeMe)
		pr.Patch("/me", h.HandleUpdateMe)
		pr.Patch("/me/password", h.HandleChangePassword)

		pr.Group(func(mr chi.Router) {
			mr.Use(auth.RequireRole(workspacepolicy.AdministerAccountsRoles()...))
			mr.Get("/", h.ServeList)
			mr.Delete("/{id}", h.HandleDelete)
		})
	})

	return r
}
