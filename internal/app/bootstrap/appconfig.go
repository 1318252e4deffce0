// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging, CORS, request limits). AppConfig is everything specific to
// DevFlow: the database, session tokens, and workspace identity.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bearer token configuration
	JWTSecret string        // Signing secret for session tokens (must be strong in production)
	TokenTTL  time.Duration // Token lifetime

	// Workspace identity, applied when the singleton document is first created
	TeamName      string
	TeamHead      string
	LeaderContact string

	// Optional management account ensured at startup so a fresh deployment
	// has a first login. Skipped when the email is blank.
	BootstrapAdminEmail    string
	BootstrapAdminName     string
	BootstrapAdminPassword string
}
