// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	userstore "github.com/devflowhq/devflow/internal/app/store/users"
	workspacestore "github.com/devflowhq/devflow/internal/app/store/workspace"
	"github.com/devflowhq/devflow/internal/app/system/timeouts"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// Two migrations run here rather than on the request path:
//   - CleanupLegacySeed removes the placeholder roster that old deployments
//     seeded into the workspace, along with tasks assigned to it.
//   - EnsureAdmin creates the configured management account when the users
//     collection does not already have it.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	runCtx, cancel := context.WithTimeout(ctx, timeouts.Long)
	defer cancel()

	workspaces := workspacestore.NewWithTeam(deps.MongoDatabase, workspacestore.TeamInfo{
		Name:    appCfg.TeamName,
		Head:    appCfg.TeamHead,
		Contact: appCfg.LeaderContact,
	})
	if err := workspaces.CleanupLegacySeed(runCtx); err != nil {
		logger.Error("legacy seed cleanup failed", zap.Error(err))
		return err
	}

	if appCfg.BootstrapAdminEmail != "" {
		users := userstore.New(deps.MongoDatabase)
		if err := users.EnsureAdmin(runCtx, appCfg.BootstrapAdminName, appCfg.BootstrapAdminEmail, appCfg.BootstrapAdminPassword); err != nil {
			logger.Error("admin bootstrap failed", zap.Error(err))
			return err
		}
		logger.Info("management account ensured", zap.String("email", appCfg.BootstrapAdminEmail))
	}

	return nil
}
