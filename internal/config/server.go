package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/matzehuels/rinkplot/pkg/cache"
	"github.com/matzehuels/rinkplot/pkg/errors"
)

// EnvPrefix is the prefix of every server environment variable.
const EnvPrefix = "RINKPLOT"

// Server configures `rinkplot serve`.
type Server struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	RenderTimeout   time.Duration `envconfig:"RENDER_TIMEOUT" default:"20s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`

	CacheBackend    string `envconfig:"CACHE_BACKEND"`
	CacheDir        string `envconfig:"CACHE_DIR"`
	CacheURL        string `envconfig:"CACHE_URL"`
	CacheDatabase   string `envconfig:"CACHE_DATABASE"`
	CacheCollection string `envconfig:"CACHE_COLLECTION"`
}

// LoadServer reads RINKPLOT_* variables.
func LoadServer() (Server, error) {
	var cfg Server
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "server environment")
	}
	return cfg, nil
}

// CacheConfig overlays the environment's cache settings on base.
func (s Server) CacheConfig(base cache.Config) cache.Config {
	if s.CacheBackend != "" {
		base.Backend = s.CacheBackend
	}
	if s.CacheDir != "" {
		base.Dir = s.CacheDir
	}
	if s.CacheURL != "" {
		base.URL = s.CacheURL
	}
	if s.CacheDatabase != "" {
		base.Database = s.CacheDatabase
	}
	if s.CacheCollection != "" {
		base.Collection = s.CacheCollection
	}
	return base
}
