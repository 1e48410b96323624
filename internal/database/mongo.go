package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultMongoDatabase is used when the URI carries no database path.
const DefaultMongoDatabase = "site-pessoal"

// ConnectMongo opens a MongoDB client, pings the primary and returns the
// database named by the URI path.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, *mongo.Database, error) {
	if uri == "" {
		return nil, nil, fmt.Errorf("mongodb uri must not be empty")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, client.Database(MongoDatabaseName(uri)), nil
}

// MongoDatabaseName extracts the database from a connection URI.
func MongoDatabaseName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return DefaultMongoDatabase
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return DefaultMongoDatabase
	}
	return name
}
