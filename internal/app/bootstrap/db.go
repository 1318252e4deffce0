// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	userstore "github.com/devflowhq/devflow/internal/app/store/users"
	"github.com/devflowhq/devflow/internal/app/system/timeouts"
)

// ConnectDB establishes the MongoDB connection used by all stores.
//
// The client is verified with a ping so that a bad URI or unreachable
// server fails startup instead of surfacing on the first request.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, timeouts.Short)
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema sets up indexes or schema as needed.
//
// DevFlow keeps a unique index on user email so duplicate registration
// is rejected at the database rather than by a read-then-write check.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	idxCtx, cancel := context.WithTimeout(ctx, timeouts.Medium)
	defer cancel()

	if err := userstore.New(deps.MongoDatabase).EnsureIndexes(idxCtx); err != nil {
		logger.Error("user index setup failed", zap.Error(err))
		return err
	}
	return nil
}
