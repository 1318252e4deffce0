// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"

	workspacestore "github.com/devflowhq/devflow/internal/app/store/workspace"
	"github.com/devflowhq/devflow/internal/app/system/auth"
)

// appConfigKeys defines the configuration keys for DevFlow.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: DEVFLOW_MONGO_URI, DEVFLOW_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "devflow", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Session tokens
	{Name: "jwt_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Token signing secret (must be strong in production)"},
	{Name: "token_ttl", Default: "168h", Desc: "Session token lifetime (e.g., 168h, 24h)"},

	// Workspace identity used when the singleton document is created
	{Name: "team_name", Default: workspacestore.DefaultTeamName, Desc: "Workspace team display name"},
	{Name: "team_head", Default: workspacestore.DefaultTeamHead, Desc: "Workspace team head display name"},
	{Name: "leader_contact", Default: workspacestore.DefaultLeaderContact, Desc: "Workspace team head contact email"},

	// Management account bootstrap
	{Name: "bootstrap_admin_email", Default: "", Desc: "Email of a management account ensured on startup (blank disables)"},
	{Name: "bootstrap_admin_name", Default: "Admin", Desc: "Display name for the bootstrap management account"},
	{Name: "bootstrap_admin_password", Default: "", Desc: "Password for the bootstrap management account"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, DEVFLOW_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "DEVFLOW", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTSecret: appValues.String("jwt_secret"),
		TokenTTL:  appValues.Duration("token_ttl", auth.DefaultTokenTTL),

		TeamName:      appValues.String("team_name"),
		TeamHead:      appValues.String("team_head"),
		LeaderContact: appValues.String("leader_contact"),

		BootstrapAdminEmail:    appValues.String("bootstrap_admin_email"),
		BootstrapAdminName:     appValues.String("bootstrap_admin_name"),
		BootstrapAdminPassword: appValues.String("bootstrap_admin_password"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// DevFlow validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect, and refuses a weak token secret
// outside of development.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.JWTSecret == "" {
		return fmt.Errorf("jwt_secret must not be empty")
	}
	if coreCfg.Env == "prod" && appCfg.JWTSecret == "dev-only-change-me-please-0123456789ABCDEF" {
		return fmt.Errorf("jwt_secret must be changed from the development default in production")
	}

	if appCfg.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive, got %s", appCfg.TokenTTL)
	}

	if appCfg.BootstrapAdminEmail != "" && appCfg.BootstrapAdminPassword == "" {
		return fmt.Errorf("bootstrap_admin_password is required when bootstrap_admin_email is set")
	}

	return nil
}
