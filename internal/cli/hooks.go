package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rinkplot/pkg/observability"
)

// debugHooks logs pipeline and cache events at debug level.
type debugHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks
	logger *log.Logger
}

func (h *debugHooks) OnPlanBuilt(_ context.Context, orientation string, shapes int, d time.Duration) {
	h.logger.Debug("plan built", "orientation", orientation, "shapes", shapes, "duration", d)
}

func (h *debugHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "error", err)
		return
	}
	h.logger.Debug("render complete", "formats", formats, "duration", d)
}

func (h *debugHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *debugHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *debugHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
