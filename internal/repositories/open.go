package repositories

import (
	"context"
	"fmt"
	"io"

	"github.com/rohits-web03/roboshow/internal/config"
)

// OpenStore builds the backend selected by cfg.Driver. The returned closer
// releases connections and is never nil.
func OpenStore(ctx context.Context, cfg config.StorageConfig) (Store, io.Closer, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemoryStore(), nopCloser{}, nil
	case "file":
		return NewFileStore(cfg.FilePath), nopCloser{}, nil
	case "sqlite":
		s, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case "redis":
		client, err := ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		s := NewRedisStore(client)
		return s, s, nil
	case "postgres":
		s, err := ConnectDatabase(cfg.DB_URL)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
