// Package database wraps the MongoDB client used as the record store.
// It exposes the small surface the rest of the application needs:
// connect, ping, collection access, and disconnect.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ghuser/aquacatalog/pkg/logger"
)

const connectTimeout = 10 * time.Second

// Database is a thin wrapper around a connected MongoDB client scoped to a
// single database. Safe for concurrent use; the driver manages its own
// connection pool.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a MongoDB connection, verifies it with a primary ping,
// and returns a Database scoped to dbName.
func Connect(ctx context.Context, uri, dbName string, log logger.Logger) (*Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Info("mongodb connected", "database", dbName)
	return &Database{client: client, db: client.Database(dbName)}, nil
}

// Ping verifies the primary is still reachable. Satisfies httpx.HealthChecker.
func (d *Database) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Collection returns a handle to the named collection.
func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Close disconnects the underlying client.
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
