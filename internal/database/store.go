package database

import (
	"context"
	"fmt"

	"github.com/octobees/portfolio-contact/api/internal/config"
	"github.com/octobees/portfolio-contact/api/internal/repository"
)

// CloseFunc releases the resources behind an opened store.
type CloseFunc func(ctx context.Context) error

// Open connects to the store selected by driver and returns its repository.
// Postgres stores get their schema ensured before use.
func Open(ctx context.Context, driver config.StoreDriver, storeURL string) (repository.SubmissionsRepository, CloseFunc, error) {
	switch driver {
	case config.StoreDriverPostgres:
		pool, err := Connect(ctx, storeURL)
		if err != nil {
			return nil, nil, err
		}
		if err := EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		closeFn := func(context.Context) error {
			pool.Close()
			return nil
		}
		return repository.NewPGXSubmissionsRepository(pool), closeFn, nil

	case config.StoreDriverMongo:
		client, db, err := ConnectMongo(ctx, storeURL)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewMongoSubmissionsRepository(client, db), client.Disconnect, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", driver)
	}
}
