// Package mongo holds the Mongo-backed repositories for the business
// catalog and local accounts, plus the shared connection bootstrap.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect dials the deployment at uri, pings it to confirm it is
// reachable, and hands back the client together with the named
// database the repositories operate on. The timeout bounds both the
// dial and the ping; callers pass the configured MONGO_TIMEOUT, and a
// non-positive value falls back to 10s.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*mongo.Client, *mongo.Database, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect %q: %w", uri, err)
	}
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("ping %q: %w", uri, err)
	}
	return client, client.Database(database), nil
}
