package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rinkplot/pkg/cache"
	"github.com/matzehuels/rinkplot/pkg/errors"
	"github.com/matzehuels/rinkplot/pkg/observability"
	"github.com/matzehuels/rinkplot/pkg/rink"
)

// Runner builds plans and renders them through an artifact cache. It holds
// no per-request state and is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner fills nil arguments with a NullCache, the default keyer and
// log.Default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	r := &Runner{Cache: c, Keyer: keyer, Logger: logger}
	if r.Cache == nil {
		r.Cache = cache.NewNullCache()
	}
	if r.Keyer == nil {
		r.Keyer = cache.NewDefaultKeyer()
	}
	if r.Logger == nil {
		r.Logger = log.Default()
	}
	return r
}

// Execute validates opts, builds the plan and returns every requested
// format, serving cached artifacts where possible.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	plan, planHash, err := r.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}
	res := &Result{Plan: plan, PlanHash: planHash}
	res.Stats.PlanTime = time.Since(start)
	res.Stats.ShapeCount = len(plan.Shapes)

	v := plan.Viewport
	opts.Logger.Debug("built plan",
		"orientation", opts.Orientation,
		"xlim", v.XLim,
		"ylim", v.YLim,
		"shapes", res.Stats.ShapeCount,
		"duration", res.Stats.PlanTime)

	if opts.HasFormat(FormatPNG) {
		if err := errors.ValidateCanvas(v.FigureWidth, v.FigureHeight, opts.DPI, MaxPixels); err != nil {
			return nil, err
		}
	}

	start = time.Now()
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	res.Artifacts, res.CacheInfo, err = r.render(ctx, plan, planHash, opts)
	res.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, res.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", len(res.CacheInfo.Hits),
		"duration", res.Stats.RenderTime)
	return res, nil
}

// Plan builds the drawing plan for opts and returns it with its content hash.
func (r *Runner) Plan(ctx context.Context, opts Options) (rink.Plan, string, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return rink.Plan{}, "", err
	}

	start := time.Now()
	plan := rink.Build(opts.PlanOptions())
	observability.Pipeline().OnPlanBuilt(ctx, opts.Orientation, len(plan.Shapes), time.Since(start))

	hash, err := PlanHash(plan)
	if err != nil {
		return rink.Plan{}, "", err
	}
	return plan, hash, nil
}

// PlanHash is the sha256 of the plan's JSON encoding. Artifact keys are
// derived from it.
func PlanHash(p rink.Plan) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("serialize plan for cache key: %w", err)
	}
	return cache.Hash(data), nil
}

// render serves each format from the cache when it can and renders the rest
// in one pass. Cache failures are logged and never fail the render.
func (r *Runner) render(ctx context.Context, plan rink.Plan, planHash string, opts Options) (map[string][]byte, CacheInfo, error) {
	var info CacheInfo
	artifacts := make(map[string][]byte, len(opts.Formats))
	missing := opts.Formats
	if !opts.Refresh {
		missing = r.lookup(ctx, planHash, opts, artifacts, &info)
	}
	info.RenderHit = len(missing) == 0
	if info.RenderHit {
		return artifacts, info, nil
	}

	rendered, err := RenderFormats(ctx, plan, planHash, opts, missing)
	if err != nil {
		return nil, info, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		r.store(ctx, planHash, opts, format, data)
	}
	return artifacts, info, nil
}

// lookup copies cached formats into artifacts and returns the formats that
// still need rendering.
func (r *Runner) lookup(ctx context.Context, planHash string, opts Options, artifacts map[string][]byte, info *CacheInfo) []string {
	var missing []string
	for _, format := range opts.Formats {
		data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format)))
		switch {
		case err != nil:
			opts.Logger.Warn("cache read failed", "format", format, "error", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
			info.Hits = append(info.Hits, format)
			continue
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}
	return missing
}

func (r *Runner) store(ctx context.Context, planHash string, opts Options, format string, data []byte) {
	key := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		opts.Logger.Warn("cache write failed", "format", format, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "artifact", len(data))
}

// Close closes the cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}
