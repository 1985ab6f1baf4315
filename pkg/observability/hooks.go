// Package observability lets a binary observe rinkplot without the libraries
// depending on any metrics or tracing backend.
//
// Three event families exist: pipeline (plan built, render start and end),
// cache (hit, miss, set) and HTTP (request, response, error). Each has an
// interface, a no-op implementation to embed, and a process-wide slot that
// main fills at startup:
//
//	observability.SetCacheHooks(myCacheHooks{})
//
// Libraries read the slot at the call site:
//
//	observability.Pipeline().OnRenderStart(ctx, formats)
//	// ... render ...
//	observability.Pipeline().OnRenderComplete(ctx, formats, time.Since(start), err)
//
// Registration is safe at any time; a hook set mid-run sees the events that
// follow it.
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the rendering pipeline.
type PipelineHooks interface {
	// OnPlanBuilt records a computed drawing plan.
	OnPlanBuilt(ctx context.Context, orientation string, shapeCount int, duration time.Duration)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives artifact cache events. keyType is the artifact
// format ("svg", "png", ...).
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives server events. route is the matched chi pattern
// ("/rink/{format}"), not the raw path.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)

	// OnError records a request that failed with err, before the error
	// response is written.
	OnError(ctx context.Context, method, route string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks ignores every event. Embed it to implement a subset.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnPlanBuilt(context.Context, string, int, time.Duration)          {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Registry
// =============================================================================

// slot holds one registered hook set; an empty slot reads as def.
type slot[T any] struct {
	p   atomic.Pointer[T]
	def T
}

func (s *slot[T]) load() T {
	if p := s.p.Load(); p != nil {
		return *p
	}
	return s.def
}

func (s *slot[T]) store(h T) { s.p.Store(&h) }
func (s *slot[T]) clear()    { s.p.Store(nil) }

var (
	pipelineSlot = slot[PipelineHooks]{def: NoopPipelineHooks{}}
	cacheSlot    = slot[CacheHooks]{def: NoopCacheHooks{}}
	httpSlot     = slot[HTTPHooks]{def: NoopHTTPHooks{}}
)

// SetPipelineHooks registers h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		pipelineSlot.store(h)
	}
}

// SetCacheHooks registers h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cacheSlot.store(h)
	}
}

// SetHTTPHooks registers h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		httpSlot.store(h)
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return pipelineSlot.load() }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return cacheSlot.load() }

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks { return httpSlot.load() }

// Reset restores the no-op hooks. Tests call it in cleanup.
func Reset() {
	pipelineSlot.clear()
	cacheSlot.clear()
	httpSlot.clear()
}
