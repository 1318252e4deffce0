// Package timeouts provides centralized timeout values for handler
// operations.
//
// These are used with context.WithTimeout for database work in HTTP
// handlers. Centralizing them keeps store calls consistent and makes the
// values easy to adjust in one place.
package timeouts

import "time"

const (
	// Ping covers health checks and connectivity verification.
	Ping = 2 * time.Second

	// Short covers simple single-document reads or lookups.
	Short = 5 * time.Second

	// Medium covers list queries and read-modify-write aggregate saves.
	Medium = 10 * time.Second

	// Long covers startup work: index creation and seed migration.
	Long = 30 * time.Second
)
