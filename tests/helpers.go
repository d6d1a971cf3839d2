package tests

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/database"
)

// SetupTestDB поднимает MongoDB в контейнере и подключается к нему через database.Connect
func SetupTestDB(t *testing.T) (*mongo.Database, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("Failed to start mongodb container: %v", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	client, db, err := database.Connect(ctx, database.Options{
		URI:         uri,
		Database:    "todoapp_test",
		MaxAttempts: 5,
		RetryDelay:  time.Second,
		PingTimeout: 5 * time.Second,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	cleanup := func() {
		client.Disconnect(ctx)
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Errorf("Failed to terminate container: %v", err)
		}
	}

	return db, cleanup
}

// DropCollections очищает все коллекции
func DropCollections(t *testing.T, db *mongo.Database) {
	t.Helper()
	if err := db.Drop(context.Background()); err != nil {
		t.Fatalf("Failed to drop database: %v", err)
	}
}
