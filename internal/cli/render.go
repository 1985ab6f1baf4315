package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rinkplot/pkg/errors"
	"github.com/matzehuels/rinkplot/pkg/geom"
	"github.com/matzehuels/rinkplot/pkg/pipeline"
)

// defaultOutput is the base file name used when -o is not given.
const defaultOutput = "rink"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file path (or base path for multiple outputs)
	formats     string   // comma-separated output formats
	orientation string   // horizontal or vertical
	x, y        string   // range specs: preset, lower bound or "lo,hi"
	length      float64  // figure length in inches, 0 for default
	style       string   // palette name
	dpi         float64  // output resolution
	transparent bool     // omit the background
	title       string   // SVG document title
	markers     []string // "x,y" overlay dots in rink coordinates
	noCache     bool     // bypass the artifact cache
	refresh     bool     // re-render and overwrite cached artifacts
}

// renderCommand creates the render command for generating rink diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a rink diagram",
		Long: `Render an NHL rink to one or more files.

Ranges select the visible region in rink feet. x runs from -100 to 100
along the length, y from -42.5 to 42.5 across the width. Each accepts a
preset (x: half, ozone; y: half), a lower bound ("25") or a pair ("10,60").
Out-of-range values are clamped; anything unrecognized shows the full axis.`,
		Example: `  rinkplot render -o rink.svg
  rinkplot render --orientation vertical --x ozone -f svg,png
  rinkplot render --x half --marker 69,22 --marker 80,-5 -o shots.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); default \"rink\"")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.FormatNames(), ", ")+" (comma-separated; default from the -o extension)")
	cmd.Flags().StringVarP(&opts.orientation, "orientation", "r", "", "rink orientation: horizontal (default), vertical")
	cmd.Flags().StringVar(&opts.x, "x", "", "x range: half, ozone, a lower bound or lo,hi")
	cmd.Flags().StringVar(&opts.y, "y", "", "y range: half, a lower bound or lo,hi")
	cmd.Flags().Float64Var(&opts.length, "length", 0, "figure length in inches (default 14 for a full horizontal rink, else 8)")
	cmd.Flags().StringVar(&opts.style, "style", "", "color style: classic (default), mono")
	cmd.Flags().Float64Var(&opts.dpi, "dpi", 0, "output resolution in dots per inch (default 100)")
	cmd.Flags().BoolVar(&opts.transparent, "transparent", false, "omit the background")
	cmd.Flags().StringVar(&opts.title, "title", "", "SVG document title")
	cmd.Flags().StringArrayVar(&opts.markers, "marker", nil, "overlay dot at x,y in rink coordinates (repeatable)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")
	registerRenderCompletions(cmd)

	return cmd
}

// pipelineOptions converts flags to pipeline options, filling unset values
// from the config file.
func (c *CLI) pipelineOptions(opts *renderOpts) (pipeline.Options, error) {
	po := pipeline.Options{
		Orientation: opts.orientation,
		X:           opts.x,
		Y:           opts.y,
		Length:      opts.length,
		Formats:     parseFormats(opts.formats),
		Style:       opts.style,
		DPI:         opts.dpi,
		Transparent: opts.transparent,
		Title:       opts.title,
		Refresh:     opts.refresh,
		Logger:      c.Logger,
	}
	for _, m := range opts.markers {
		p, err := geom.ParsePoint(m)
		if err != nil {
			return po, errors.Wrap(errors.ErrCodeInvalidInput, err, "--marker")
		}
		po.Markers = append(po.Markers, p)
	}
	if po.Formats == nil {
		if f := formatFromPath(opts.output); f != "" {
			po.Formats = []string{f}
		}
	}
	c.Config.Render.Apply(&po)
	if err := po.ValidateAndSetDefaults(); err != nil {
		return po, err
	}
	return po, nil
}

// runRender renders the rink in every requested format and writes the files.
func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	po, err := c.pipelineOptions(opts)
	if err != nil {
		return err
	}
	paths, err := outputPaths(opts.output, po.Formats)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering rink...")
	spinner.Start()
	prog := newProgress(logger)
	result, err := runner.Execute(ctx, po)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done("Rendered", "formats", strings.Join(po.Formats, ","), "shapes", result.Stats.ShapeCount, "cached", result.CacheInfo.RenderHit)

	for _, format := range po.Formats {
		path := paths[format]
		if err := writeOutput(path, result.Artifacts[format]); err != nil {
			return err
		}
		logger.Debugf("Wrote %s: %d bytes", path, len(result.Artifacts[format]))
	}

	v := result.Plan.Viewport
	printSuccess("Rendered %s rink", po.Orientation)
	printStats(result.Stats.ShapeCount, v.FigureWidth, v.FigureHeight, result.CacheInfo.RenderHit)
	for _, format := range po.Formats {
		printFile(paths[format])
	}
	return nil
}

// formatFromPath returns the format named by path's extension, or "".
func formatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if pipeline.ValidFormats[ext] {
		return ext
	}
	return ""
}

// basePath strips a known format extension from output, or returns the
// default base name when output is empty.
func basePath(output string) string {
	if output == "" {
		return defaultOutput
	}
	if formatFromPath(output) != "" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return output
}

// outputPaths maps each format to its file. A single format written to an
// explicit path keeps that path as is, unless its extension names another
// format; otherwise files are named base.format.
func outputPaths(output string, formats []string) (map[string]string, error) {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		if ext := formatFromPath(output); ext != "" && ext != formats[0] {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"output %q has a .%s extension but the format is %s", output, ext, formats[0])
		}
		paths[formats[0]] = output
	} else {
		base := basePath(output)
		for _, f := range formats {
			paths[f] = base + "." + f
		}
	}
	for _, p := range paths {
		if err := errors.ValidateOutputPath(p); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
