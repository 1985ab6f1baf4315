// Package cli is the rinkplot command tree.
//
// Commands:
//
//	render    draw the rink to svg, png, pdf or json files
//	catalog   list markings by paint layer, or graph them
//	pick      choose a preset view in a terminal list, then render it
//	serve     run the HTTP renderer
//	cache     inspect or clear the artifact cache
//
// Every command gets its logger from the context that the root command
// prepares; -v lowers the level to debug and routes pipeline and cache
// events into the log.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// logTimeFormat prints wall time to the hundredth of a second.
const logTimeFormat = "15:04:05.00"

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
	})
}

// progress measures one step and reports it through the logger.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with keyvals plus elapsed=<ms>, e.g.
// "Rendered formats=svg,png shapes=94 cached=false elapsed=12ms".
func (p *progress) done(msg string, keyvals ...any) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(msg, append(keyvals, "elapsed", elapsed)...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default so commands run outside the
// root command still log.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
