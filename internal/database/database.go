// Package database establishes the connection to the document store.
//
// It builds the connection URI from config, connects a single mongo client
// that is shared for the life of the process, and exposes typed accessors
// for the named collections the API operates on.
package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mariaparlour/backend/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. These are part of the deployed data layout; renaming
// them orphans existing documents.
const (
	CollectionUsers    = "users"
	CollectionUserInfo = "userInfo"
	CollectionServices = "services"
	CollectionReviews  = "review"
	CollectionPayments = "payment"
)

// DatabasePingTimeout is the number of seconds to wait for the startup ping
// before considering the store unreachable.
const DatabasePingTimeout = 10

// Database wraps the mongo client and the application database handle.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zerolog.Logger
}

// New connects to the document store and pings it so startup fails fast
// when the store is down.
//
// The client is configured for the Stable API (v1, strict) so driver
// behavior stays pinned across server upgrades.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	// URL-encode the password so reserved characters cannot break the URI.
	encodedPassword := url.QueryEscape(cfg.Database.Password)

	uri := fmt.Sprintf("%s://%s:%s@%s/?retryWrites=true&w=majority",
		cfg.Database.Scheme,
		cfg.Database.User,
		encodedPassword,
		cfg.Database.Host,
	)

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	clientOpts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	logger.Info().Str("database", cfg.Database.Name).Msg("connected to the document store")

	return &Database{
		Client: client,
		DB:     client.Database(cfg.Database.Name),
		log:    logger,
	}, nil
}

// Collection returns a handle for the named collection.
func (db *Database) Collection(name string) *mongo.Collection {
	return db.DB.Collection(name)
}

// Ping verifies connectivity. Used by the health endpoint.
func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client, waiting for in-flight operations.
func (db *Database) Close(ctx context.Context) error {
	db.log.Info().Msg("closing document store connection")
	return db.Client.Disconnect(ctx)
}
