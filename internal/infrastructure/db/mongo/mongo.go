package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultTimeout bounds the initial dial and every repository operation.
const defaultTimeout = 10 * time.Second

// Config carries the MongoDB connection settings.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect dials MongoDB with the Stable API pinned to v1 in strict mode, so
// the server rejects any command outside the versioned surface, and verifies
// connectivity with a ping before handing back the application database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true)
	client, err := mongo.Connect(dialCtx, options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
