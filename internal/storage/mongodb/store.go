// Package mongodb implements the metadata store on MongoDB. Entities are
// stored one collection per type; all lookups go through the entity's own
// id field, never the Mongo object id.
package mongodb

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"sciodb/internal/config"
	"sciodb/internal/storage"
)

// passwordEnvVar is the environment variable the MongoDB password is read
// from. It is never part of the config file.
const passwordEnvVar = "MONGO_PASSWORD"

const connectTimeout = 10 * time.Second

// Store is a handle to the MongoDB metadata database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect connects to MongoDB using the given configuration and verifies
// the connection with a ping.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	password := os.Getenv(passwordEnvVar)

	uri := fmt.Sprintf("mongodb://%s:%s@%s:%d/?authSource=%s",
		url.QueryEscape(cfg.Username),
		url.QueryEscape(password),
		cfg.Host,
		cfg.Port,
		url.QueryEscape(cfg.Source),
	)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		storage.Logger("mongodb").Error("connect failed",
			"host", cfg.Host, "port", cfg.Port, "error", err)
		return nil, fmt.Errorf("%w: %v", storage.ErrConnectionFailed, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		storage.Logger("mongodb").Error("ping failed",
			"host", cfg.Host, "port", cfg.Port, "error", err)
		return nil, fmt.Errorf("%w: %v", storage.ErrConnectionFailed, err)
	}

	return &Store{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// NewStoreFromClient wraps an existing client, used by tests.
func NewStoreFromClient(client *mongo.Client, database string) *Store {
	return &Store{
		client: client,
		db:     client.Database(database),
	}
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Database returns the underlying database handle.
func (s *Store) Database() *mongo.Database {
	return s.db
}

// collection returns the collection handle for an entity type.
func collection[T Entity](s *Store) *mongo.Collection {
	var zero T
	return s.db.Collection(zero.CollectionName())
}
