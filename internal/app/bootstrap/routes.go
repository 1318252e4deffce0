// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	healthfeature "github.com/devflowhq/devflow/internal/app/features/health"
	usersfeature "github.com/devflowhq/devflow/internal/app/features/users"
	workspacefeature "github.com/devflowhq/devflow/internal/app/features/workspace"
	workspacestore "github.com/devflowhq/devflow/internal/app/store/workspace"
	"github.com/devflowhq/devflow/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// DevFlow mounts a health endpoint plus two JSON API areas: account
// management under /api/users and the shared workspace under
// /api/workspace. A single TokenManager is shared by both so tokens
// issued at login are honored everywhere.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens := auth.NewTokenManager(appCfg.JWTSecret, appCfg.TokenTTL)

	team := workspacestore.TeamInfo{
		Name:    appCfg.TeamName,
		Head:    appCfg.TeamHead,
		Contact: appCfg.LeaderContact,
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Registration, login, and profile management
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, tokens, logger)
	r.Mount("/api/users", usersfeature.Routes(usersHandler))

	// The shared team workspace: members, tasks, messages, activity
	workspaceHandler := workspacefeature.NewHandler(deps.MongoDatabase, team, tokens, logger)
	r.Mount("/api/workspace", workspacefeature.Routes(workspaceHandler))

	return r, nil
}
