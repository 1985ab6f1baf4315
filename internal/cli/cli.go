package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rinkplot/internal/config"
	"github.com/matzehuels/rinkplot/pkg/buildinfo"
	"github.com/matzehuels/rinkplot/pkg/cache"
	"github.com/matzehuels/rinkplot/pkg/observability"
	"github.com/matzehuels/rinkplot/pkg/pipeline"
)

// appName names the XDG config and cache directories.
const appName = "rinkplot"

// Log levels accepted by New.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI is the state every subcommand shares. Config is loaded in the root
// command's pre-run hook, before any subcommand executes.
type CLI struct {
	Logger *log.Logger
	Config config.File

	configPath string
	verbose    bool
}

// New returns a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

func (c *CLI) SetLogLevel(level log.Level) { c.Logger.SetLevel(level) }

// RootCommand assembles the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Rinkplot draws NHL ice rink diagrams",
		Long:          `Rinkplot renders a regulation NHL rink (boards, lines, circles, creases and nets) to SVG, PNG, PDF or JSON, horizontally or vertically, cropped to any region of the ice.`,
		Version:       buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/rinkplot/config.toml)")

	root.AddCommand(
		c.renderCommand(),
		c.catalogCommand(),
		c.pickCommand(),
		c.serveCommand(),
		c.cacheCommand(),
		c.completionCommand(),
	)
	return root
}

// setup applies --verbose, loads the config file and attaches the logger to
// the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
		observability.SetPipelineHooks(&debugHooks{logger: c.Logger})
		observability.SetCacheHooks(&debugHooks{logger: c.Logger})
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// newRunner returns a runner over the configured cache with unscoped keys.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// newCache opens the configured backend; the file cache defaults to
// fileCacheDir. Without a usable home directory caching is off.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cfg := c.Config.Cache
	dir, err := c.fileCacheDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	cfg.Dir = dir
	return cache.Open(ctx, cfg)
}

// cacheDir is $XDG_CACHE_HOME/rinkplot, falling back to ~/.cache/rinkplot.
func cacheDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, appName), nil
}

// parseFormats splits a comma list into lower-cased formats. Empty input
// yields nil so configured defaults apply.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			formats = append(formats, p)
		}
	}
	return formats
}
