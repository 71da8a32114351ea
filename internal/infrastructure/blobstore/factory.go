package blobstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
	infmongo "github.com/jhoicas/retailmaster-api/internal/infrastructure/mongo"
	infpostgres "github.com/jhoicas/retailmaster-api/internal/infrastructure/postgres"
	"github.com/jhoicas/retailmaster-api/pkg/config"
)

// Open construye el BlobStore según el driver configurado. La función de
// cierre devuelta libera los recursos del driver (no-op para memory y file).
func Open(ctx context.Context, cfg config.StoreConfig) (repository.BlobStore, func(), error) {
	noop := func() {}
	switch cfg.Driver {
	case config.StoreDriverMemory:
		return NewMemoryStore(), noop, nil

	case config.StoreDriverFile:
		store, err := NewFileStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil

	case config.StoreDriverPostgres:
		pool, err := infpostgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		store, err := infpostgres.NewBlobStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil

	case config.StoreDriverMongo:
		client, err := infmongo.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		close := func() { _ = client.Disconnect(context.Background()) }
		return infmongo.NewBlobStore(client, cfg.MongoDB), close, nil
	}
	return nil, nil, fmt.Errorf("driver de blob store desconocido: %q", cfg.Driver)
}
