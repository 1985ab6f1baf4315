// Package config loads rinkplot settings.
//
// The CLI reads an optional TOML file with render defaults and the cache
// backend. The server additionally reads RINKPLOT_* environment variables,
// which take precedence over the file.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/rinkplot/pkg/cache"
	"github.com/matzehuels/rinkplot/pkg/errors"
	"github.com/matzehuels/rinkplot/pkg/pipeline"
)

const (
	appName  = "rinkplot"
	fileName = "config.toml"
)

// Render holds defaults for rendering. Zero values leave the pipeline
// defaults in place.
type Render struct {
	Orientation string   `toml:"orientation"`
	X           string   `toml:"x"`
	Y           string   `toml:"y"`
	Length      float64  `toml:"length"`
	Formats     []string `toml:"formats"`
	Style       string   `toml:"style"`
	DPI         float64  `toml:"dpi"`
	Transparent bool     `toml:"transparent"`
}

// File is the layout of config.toml:
//
//	[render]
//	orientation = "vertical"
//	style = "mono"
//
//	[cache]
//	backend = "redis"
//	url = "redis://localhost:6379/0"
type File struct {
	Render Render       `toml:"render"`
	Cache  cache.Config `toml:"cache"`
}

// DefaultPath returns $XDG_CONFIG_HOME/rinkplot/config.toml, falling back to
// ~/.config.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config file at path. An empty path means DefaultPath,
// which may be missing; an explicit path must exist. Unknown keys are
// rejected so typos do not pass silently.
func Load(path string) (File, error) {
	var f File

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return f, nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return f, nil
		}
		return f, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}

	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return f, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return f, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return f, nil
}

// Apply fills unset fields of opts from r.
func (r Render) Apply(opts *pipeline.Options) {
	if opts.Orientation == "" {
		opts.Orientation = r.Orientation
	}
	if opts.X == "" {
		opts.X = r.X
	}
	if opts.Y == "" {
		opts.Y = r.Y
	}
	if opts.Length == 0 {
		opts.Length = r.Length
	}
	if len(opts.Formats) == 0 {
		opts.Formats = r.Formats
	}
	if opts.Style == "" {
		opts.Style = r.Style
	}
	if opts.DPI == 0 {
		opts.DPI = r.DPI
	}
	if r.Transparent {
		opts.Transparent = true
	}
}
