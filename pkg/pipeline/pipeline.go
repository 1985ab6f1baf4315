// Package pipeline turns render options into rink artifacts for both the
// CLI and the HTTP server, so the two share defaults, validation and cache
// keys.
//
// A run has two stages. Planning normalizes the ranges and composes the
// viewport ([rink.Build]); rendering replays the plan onto a [render.Scene]
// for every requested format. [Runner] adds the artifact cache around the
// second stage:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{X: "ozone", Formats: []string{"svg", "png"}})
//	svg := res.Artifacts["svg"]
package pipeline

import (
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rinkplot/pkg/cache"
	"github.com/matzehuels/rinkplot/pkg/errors"
	"github.com/matzehuels/rinkplot/pkg/geom"
	"github.com/matzehuels/rinkplot/pkg/render"
	"github.com/matzehuels/rinkplot/pkg/render/styles"
	"github.com/matzehuels/rinkplot/pkg/rink"
)

const (
	DefaultStyle = "classic"
	DefaultDPI   = float64(render.DefaultDPI)

	// MaxPixels bounds width*height of PNG output.
	MaxPixels = 64e6
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// FormatNames returns the supported formats in sorted order.
func FormatNames() []string {
	return slices.Sorted(maps.Keys(ValidFormats))
}

// Options configures one pipeline run. Ranges stay textual so flags, query
// strings and config files pass them through untouched; see
// [rink.ParseRangeSpec].
type Options struct {
	Orientation string       `json:"orientation,omitempty"`
	X           string       `json:"x,omitempty"`
	Y           string       `json:"y,omitempty"`
	Length      float64      `json:"length,omitempty"`
	Markers     []geom.Point `json:"markers,omitempty"`

	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	DPI         float64  `json:"dpi,omitempty"`
	Transparent bool     `json:"transparent,omitempty"`
	Title       string   `json:"title,omitempty"`
	Refresh     bool     `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	orientation rink.Orientation
	validated   bool
}

// Result is the output of [Runner.Execute].
type Result struct {
	Plan      rink.Plan
	PlanHash  string            // see [PlanHash]
	Artifacts map[string][]byte // keyed by format
	Stats     Stats
	CacheInfo CacheInfo
}

type Stats struct {
	ShapeCount int
	PlanTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo reports which formats came from the cache. RenderHit is set
// when all of them did.
type CacheInfo struct {
	RenderHit bool
	Hits      []string
}

// ValidateFormat rejects unknown formats with INVALID_FORMAT.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats returns the first format error.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle rejects unknown palettes with INVALID_STYLE.
func ValidateStyle(style string) error {
	if _, ok := styles.Lookup(style); !ok {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: %s)",
			style, strings.Join(styles.Names(), ", "))
	}
	return nil
}

// ValidateAndSetDefaults parses the orientation, checks length, dpi, formats
// and style, and fills defaults. Later calls are no-ops.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	orientation, err := rink.ParseOrientation(o.Orientation)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOrientation, err, "invalid orientation")
	}
	o.orientation = orientation
	o.Orientation = orientation.String()

	if err := errors.ValidateLength(o.Length); err != nil {
		return err
	}
	if err := errors.ValidateDPI(o.DPI); err != nil {
		return err
	}

	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	o.Style = strings.ToLower(o.Style)

	o.validated = true
	return nil
}

// SetRenderDefaults fills formats (svg), style, dpi and a discarding logger.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// PlanOptions returns the input for [rink.Build]. It relies on
// ValidateAndSetDefaults having parsed the orientation.
func (o *Options) PlanOptions() rink.Options {
	return rink.Options{
		Orientation: o.orientation,
		X:           rink.ParseRangeSpec(o.X),
		Y:           rink.ParseRangeSpec(o.Y),
		Length:      o.Length,
		Markers:     o.Markers,
	}
}

// HasFormat reports whether format was requested.
func (o *Options) HasFormat(format string) bool {
	return slices.Contains(o.Formats, format)
}

// ArtifactKeyOpts keeps only the settings that change format's bytes: the
// title only reaches SVG, resolution only SVG and PNG, and JSON ignores
// the background.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Style: o.Style}
	switch format {
	case FormatSVG:
		k.DPI, k.Transparent, k.Title = o.DPI, o.Transparent, o.Title
	case FormatPNG:
		k.DPI, k.Transparent = o.DPI, o.Transparent
	case FormatPDF:
		k.Transparent = o.Transparent
	}
	return k
}
