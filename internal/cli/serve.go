package cli

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rinkplot/internal/config"
	"github.com/matzehuels/rinkplot/internal/server"
	"github.com/matzehuels/rinkplot/pkg/cache"
	"github.com/matzehuels/rinkplot/pkg/errors"
	"github.com/matzehuels/rinkplot/pkg/pipeline"
)

// serverCachePrefix keeps server artifacts apart from CLI ones when both
// share a backend.
const serverCachePrefix = "server:"

// serveCommand creates the serve command, which exposes rendering over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rink diagrams over HTTP",
		Long: `Serve rink diagrams over HTTP.

Settings come from RINKPLOT_* environment variables (RINKPLOT_ADDR,
RINKPLOT_CACHE_BACKEND, RINKPLOT_CACHE_URL, ...). Render defaults and cache
settings from the config file apply where the environment is silent.`,
		Example: `  rinkplot serve --addr :9000
  curl 'localhost:9000/rink/svg?x=ozone&orientation=vertical'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServer()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			return c.runServe(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides RINKPLOT_ADDR)")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, cfg config.Server) error {
	ctx := cmd.Context()

	if !c.verbose && cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "RINKPLOT_LOG_LEVEL")
		}
		c.SetLogLevel(level)
	}

	cacheCfg := cfg.CacheConfig(c.Config.Cache)
	if cacheCfg.Dir == "" {
		if dir, err := cacheDir(); err == nil {
			cacheCfg.Dir = dir
		}
	}
	store, err := cache.Open(ctx, cacheCfg)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, cache.NewScopedKeyer(nil, serverCachePrefix), c.Logger)
	defer runner.Close()

	srv := server.New(server.Options{
		Runner:        runner,
		Logger:        c.Logger,
		Defaults:      c.Config.Render,
		RenderTimeout: cfg.RenderTimeout,
	})

	printInfo("Listening on %s", cfg.Addr)
	printDetail("Cache: %s", cacheLabel(cacheCfg))
	return srv.ListenAndServe(ctx, cfg)
}

// cacheLabel describes the cache backend for display.
func cacheLabel(cfg cache.Config) string {
	switch strings.ToLower(cfg.Backend) {
	case "", cache.BackendFile:
		if cfg.Dir == "" {
			return "none"
		}
		return "file " + cfg.Dir
	default:
		return strings.ToLower(cfg.Backend)
	}
}
