// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/devflowhq/devflow/internal/app/system/respond"
	"github.com/devflowhq/devflow/internal/app/system/timeouts"
)

// Handler serves the liveness endpoint for load balancers and monitors.
type Handler struct {
	Client *mongo.Client
	Log    *zap.Logger
}

func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{Client: client, Log: logger}
}

// ServeHealth reports process liveness and database connectivity.
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping)
	defer cancel()

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Warn("health check: mongo ping failed", zap.Error(err))
		respond.Fail(w, http.StatusServiceUnavailable, "Database unreachable")
		return
	}
	respond.Message(w, http.StatusOK, "Backend is running")
}
