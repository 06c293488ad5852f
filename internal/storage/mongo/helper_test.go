package mongo

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	storagetesting "github.com/syntrixbase/todos/internal/storage/testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	globalTestClient     *mongo.Client
	globalTestClientErr  error
	globalTestClientOnce sync.Once
)

func testMongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	if addr := os.Getenv("MONGO_ADDR"); addr != "" {
		return "mongodb://" + addr
	}
	return "mongodb://localhost:27017"
}

// getGlobalTestClient returns a client shared by the package tests, skipping the
// test when no server is reachable.
func getGlobalTestClient(t *testing.T) *mongo.Client {
	globalTestClientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		clientOpts := options.Client().ApplyURI(testMongoURI()).SetServerSelectionTimeout(2 * time.Second)
		client, err := mongo.Connect(ctx, clientOpts)
		if err != nil {
			globalTestClientErr = err
			return
		}
		if err := client.Ping(ctx, nil); err != nil {
			client.Disconnect(ctx)
			globalTestClientErr = err
			return
		}
		globalTestClient = client
	})
	if globalTestClientErr != nil {
		t.Skipf("Skipping test: MongoDB not available: %v", globalTestClientErr)
	}
	return globalTestClient
}

type TestEnv struct {
	Client *mongo.Client
	DBName string
	DB     *mongo.Database
}

// setupTestEnv gives each test its own database, dropped on cleanup.
func setupTestEnv(t *testing.T) *TestEnv {
	t.Parallel()

	client := getGlobalTestClient(t)

	safeName := strings.ReplaceAll(t.Name(), "/", "_")
	safeName = strings.ReplaceAll(safeName, "\\", "_")
	if len(safeName) > 20 {
		safeName = safeName[len(safeName)-20:]
	}
	dbName := fmt.Sprintf("test_todos_%s_%d", safeName, time.Now().UnixNano()%100000)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Database(dbName).Drop(ctx)
	})

	return &TestEnv{
		Client: client,
		DBName: dbName,
		DB:     client.Database(dbName),
	}
}

// setupFixtureStore seeds the reference todos the way the original collection
// holds them: Sam's status is a boolean rather than a string.
func setupFixtureStore(t *testing.T) *todoStore {
	env := setupTestEnv(t)
	ctx := context.Background()

	docs := []interface{}{
		bson.D{{Key: "_id", Value: mustOID(t, storagetesting.BlanchesID)}, {Key: "owner", Value: "Blanche"}, {Key: "category", Value: "homework"}, {Key: "status", Value: "true"}},
		bson.D{{Key: "_id", Value: mustOID(t, storagetesting.FrysID)}, {Key: "owner", Value: "Fry"}, {Key: "category", Value: "video games"}, {Key: "status", Value: "false"}},
		bson.D{{Key: "_id", Value: mustOID(t, storagetesting.DawnsID)}, {Key: "owner", Value: "Dawn"}, {Key: "category", Value: "homework"}, {Key: "status", Value: "true"}, {Key: "body", Value: "do 3601 homework"}},
		bson.D{{Key: "_id", Value: mustOID(t, storagetesting.SamsID)}, {Key: "owner", Value: "Sam"}, {Key: "status", Value: true}, {Key: "category", Value: "homework"}},
	}
	_, err := env.DB.Collection("todos").InsertMany(ctx, docs)
	require.NoError(t, err)

	// The client is shared across tests, so the store must not own it.
	return &todoStore{coll: env.DB.Collection("todos")}
}

func mustOID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	oid, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return oid
}
