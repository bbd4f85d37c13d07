// Package server exposes zplot over HTTP: scenes in, figures out.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/zplane/cgrid"
	"github.com/katalvlaran/zplane/figure"
	"github.com/katalvlaran/zplane/internal/metrics"
	"github.com/katalvlaran/zplane/scene"
	"github.com/katalvlaran/zplane/trace"
	"github.com/katalvlaran/zplane/zexpr"
	"github.com/katalvlaran/zplane/zplot"
)

// maxBody caps scene request bodies.
const maxBody = 1 << 20

// maxSide caps the requested image size in points.
const maxSide = 4000.0

var contentTypes = map[string]string{
	"json": "application/json",
	"html": "text/html; charset=utf-8",
	"png":  "image/png",
	"svg":  "image/svg+xml",
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"eps":  "application/postscript",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
}

// Server handles plot requests. Each request builds its own figure; the
// server holds no per-plot state.
type Server struct {
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewHandler creates the HTTP handler.
func NewHandler(log *slog.Logger, m *metrics.Metrics) http.Handler {
	s := &Server{log: log, metrics: m}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.Health)
	r.Get("/metrics", m.Handler().ServeHTTP)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/functions", s.Functions)
		r.Get("/demo", s.Demo)
		r.Post("/plot", s.Plot)
	})

	return r
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Functions handles GET /v1/functions: the expression vocabulary.
func (s *Server) Functions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"variable":  "z",
		"constants": zexpr.Constants(),
		"functions": zexpr.Builtins(),
	})
}

// Demo handles GET /v1/demo: the built-in scene.
func (s *Server) Demo(w http.ResponseWriter, r *http.Request) {
	sc := scene.Demo()
	s.serveScene(w, r, sc, kindOf(sc))
}

// Plot handles POST /v1/plot. The body is a YAML or JSON scene; the
// format query parameter picks the response encoding (default json).
func (s *Server) Plot(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	sc, err := scene.Parse(body)
	if err != nil {
		s.metrics.ObservePlot(metrics.KindScene, formatOf(r), err, 0)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.serveScene(w, r, sc, kindOf(sc))
}

// kindOf labels a scene by what it draws: a bare grid, bare point sets,
// or both.
func kindOf(sc *scene.Scene) string {
	hasGrid := sc.Function != "" && len(sc.X) > 0 && len(sc.Y) > 0
	switch {
	case hasGrid && len(sc.Points) == 0:
		return metrics.KindGrid
	case !hasGrid && len(sc.Points) > 0:
		return metrics.KindPoints
	default:
		return metrics.KindScene
	}
}

func (s *Server) serveScene(w http.ResponseWriter, r *http.Request, sc *scene.Scene, kind string) {
	start := time.Now()
	format := formatOf(r)

	buf, err := s.render(r, sc, format)
	s.metrics.ObservePlot(kind, format, err, time.Since(start))
	if err != nil {
		s.writeError(w, statusOf(err), err)
		return
	}

	if counts, err := sc.TraceCounts(); err == nil {
		for fam, n := range counts {
			s.metrics.AddTraces(fam, n)
		}
	}

	w.Header().Set("Content-Type", contentTypes[format])
	if _, err := buf.WriteTo(w); err != nil {
		s.log.Warn("plot response write failed", "error", err)
	}
}

func (s *Server) render(r *http.Request, sc *scene.Scene, format string) (*bytes.Buffer, error) {
	if _, ok := contentTypes[format]; !ok {
		return nil, fmt.Errorf("format %q: %w", format, figure.ErrUnknownFormat)
	}
	width, height, err := sizeOf(r, sc)
	if err != nil {
		return nil, err
	}

	fig, err := sc.Build(zplot.WithLogger(s.log))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case "json":
		err = fig.WriteJSON(&buf)
	case "html":
		err = fig.WriteHTML(&buf)
	default:
		err = fig.Render(&buf, format, width, height)
	}
	if err != nil {
		return nil, err
	}
	return &buf, nil
}

func formatOf(r *http.Request) string {
	f := strings.ToLower(r.URL.Query().Get("format"))
	if f == "" {
		return "json"
	}
	return f
}

// sizeOf reads width/height from the query, falling back to the scene output.
func sizeOf(r *http.Request, sc *scene.Scene) (w, h float64, err error) {
	w, h = sc.Output.Size()
	q := r.URL.Query()
	for _, p := range []struct {
		key string
		dst *float64
	}{{"width", &w}, {"height", &h}} {
		v := q.Get(p.key)
		if v == "" {
			continue
		}
		f, perr := strconv.ParseFloat(v, 64)
		if perr != nil || f <= 0 || f > maxSide {
			return 0, 0, fmt.Errorf("%s=%q: %w", p.key, v, figure.ErrBadSize)
		}
		*p.dst = f
	}
	return w, h, nil
}

// statusOf maps caller mistakes to 400 and everything else to 500.
func statusOf(err error) int {
	for _, target := range []error{
		scene.ErrInvalidScene,
		zexpr.ErrParse, zexpr.ErrUnknownIdent, zexpr.ErrArity,
		cgrid.ErrInvalidBounds, cgrid.ErrInsufficientResolution, cgrid.ErrTooManyLines, cgrid.ErrTooManySamples,
		trace.ErrUnknownAxisKey, trace.ErrAxisDecode,
		figure.ErrUnknownFormat, figure.ErrBadColor, figure.ErrBadSize, figure.ErrEmptyFigure,
	} {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Error("plot failed", "error", err)
	} else {
		s.log.Warn("plot rejected", "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
