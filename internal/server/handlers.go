package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/rinkplot/pkg/buildinfo"
	"github.com/matzehuels/rinkplot/pkg/errors"
	"github.com/matzehuels/rinkplot/pkg/geom"
	"github.com/matzehuels/rinkplot/pkg/observability"
	"github.com/matzehuels/rinkplot/pkg/pipeline"
	"github.com/matzehuels/rinkplot/pkg/render/layers"
	"github.com/matzehuels/rinkplot/pkg/rink"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Get().Version,
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, layers.Groups(rink.Shapes()))
}

func (s *Server) handleCatalogGraph(w http.ResponseWriter, r *http.Request) {
	detailed := r.URL.Query().Get("detailed") == "true"
	dot := layers.ToDOT(rink.Shapes(), layers.Options{Detailed: detailed})
	svg, err := layers.RenderSVG(r.Context(), dot)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render catalog graph"))
		return
	}
	w.Header().Set("Content-Type", contentTypes[pipeline.FormatSVG])
	w.WriteHeader(http.StatusOK)
	w.Write(svg)
}

func (s *Server) handleRink(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(chi.URLParam(r, "format"))
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, err := parseQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}
	s.defaults.Apply(&opts)
	opts.Logger = s.logger.With("request_id", RequestIDFromContext(r.Context()))

	ctx, cancel := context.WithTimeout(r.Context(), s.renderTimeout)
	defer cancel()

	result, err := s.runner.Execute(ctx, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cacheStatus := "MISS"
	if result.CacheInfo.RenderHit {
		cacheStatus = "HIT"
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheStatus)
	w.Header().Set("X-Plan-Hash", result.PlanHash)
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[format])
}

// parseQuery reads pipeline options from query parameters. Range
// parameters pass through as text; they never fail.
func parseQuery(q url.Values) (pipeline.Options, error) {
	opts := pipeline.Options{
		Orientation: q.Get("orientation"),
		X:           q.Get("x"),
		Y:           q.Get("y"),
		Style:       q.Get("style"),
		Title:       q.Get("title"),
	}

	var err error
	if opts.Length, err = parseFloat(q, "length", errors.ErrCodeInvalidSize); err != nil {
		return opts, err
	}
	if opts.DPI, err = parseFloat(q, "dpi", errors.ErrCodeInvalidSize); err != nil {
		return opts, err
	}
	if opts.Transparent, err = parseBool(q, "transparent"); err != nil {
		return opts, err
	}
	if opts.Refresh, err = parseBool(q, "refresh"); err != nil {
		return opts, err
	}

	for _, m := range q["marker"] {
		p, err := ParseMarker(m)
		if err != nil {
			return opts, err
		}
		opts.Markers = append(opts.Markers, p)
	}
	return opts, nil
}

// ParseMarker reads a rink point written as "x,y".
func ParseMarker(s string) (geom.Point, error) {
	p, err := geom.ParsePoint(s)
	if err != nil {
		return geom.Point{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid marker %q (want x,y)", s)
	}
	return p, nil
}

func parseFloat(q url.Values, key string, code errors.Code) (float64, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New(code, "%s must be a number, got %q", key, v)
	}
	return f, nil
}

func parseBool(q url.Values, key string) (bool, error) {
	v := q.Get(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", key, v)
	}
	return b, nil
}

// writeError answers with the status errors.HTTPStatus picks. Client errors
// carry their message; server errors are logged and reported generically.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
		if status == http.StatusGatewayTimeout {
			code = errors.ErrCodeTimeout
		}
	}
	msg := errors.UserMessage(err)
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
		s.logger.Error("request failed",
			"request_id", RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"status", status,
			"error", err)
	}
	observability.HTTP().OnError(r.Context(), r.Method, routePattern(r), err)
	writeJSON(w, status, errorBody{Error: msg, Code: string(code)})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
