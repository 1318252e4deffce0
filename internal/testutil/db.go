package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestMongoURIEnv names the environment variable that points integration
// tests at a MongoDB instance. Tests that need a database skip when it
// is unset so the pure-logic suite stays runnable anywhere.
const TestMongoURIEnv = "DEVFLOW_TEST_MONGO_URI"

// SetupTestDB connects to the test MongoDB instance and returns a database
// with a unique name. The database is dropped and the client disconnected
// when the test finishes.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(TestMongoURIEnv)
	if uri == "" {
		t.Skipf("skipping: %s not set", TestMongoURIEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to connect to test MongoDB: %v", err)
	}

	db := client.Database("devflow_test_" + uuid.NewString()[:8])

	t.Cleanup(func() {
		cleanupCtx, cancelCleanup := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelCleanup()
		if err := db.Drop(cleanupCtx); err != nil {
			t.Logf("failed to drop test database: %v", err)
		}
		if err := client.Disconnect(cleanupCtx); err != nil {
			t.Logf("failed to disconnect test client: %v", err)
		}
	})

	return db
}

// TestContext returns a context with a generous timeout for test operations.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
