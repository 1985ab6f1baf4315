package cache

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Config selects and configures a backend.
type Config struct {
	Backend    string `toml:"backend"`    // none, file, redis or mongo; default file
	Dir        string `toml:"dir"`        // file backend directory
	URL        string `toml:"url"`        // redis or mongo connection string
	Database   string `toml:"database"`   // mongo only
	Collection string `toml:"collection"` // mongo only
}

// Open creates the backend described by cfg.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	var (
		c   Cache
		err error
	)
	switch strings.ToLower(cfg.Backend) {
	case BackendNone:
		return NewNullCache(), nil
	case "", BackendFile:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("file cache: no directory configured")
		}
		c, err = NewFileCache(cfg.Dir)
	case BackendRedis:
		c, err = NewRedisCache(ctx, cfg.URL)
	case BackendMongo:
		c, err = NewMongoCache(ctx, cfg.URL, cfg.Database, cfg.Collection)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
