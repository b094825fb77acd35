package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/cmseval/pkg/usecase"
	"github.com/secmon-lab/cmseval/pkg/utils/logging"
	"github.com/secmon-lab/cmseval/pkg/utils/metrics"
)

// maxImportBytes bounds the request body of POST /api/import
const maxImportBytes = 10 << 20

type Server struct {
	router   *chi.Mux
	uc       *usecase.UseCases
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

type Options func(*Server)

// WithMetrics records request durations and serves the gatherer on /metrics
func WithMetrics(m *metrics.Metrics, gatherer prometheus.Gatherer) Options {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = gatherer
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(s.observeDuration)

	r.Get("/health", healthHandler)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/vendors", func(r chi.Router) {
			r.Get("/", s.listVendors)
			r.Post("/", s.addVendor)
			// registered before /{id} so "reset" is never taken as a vendor ID
			r.Post("/reset", s.resetVendors)
			r.Get("/{id}", s.getVendor)
			r.Put("/{id}", s.saveVendor)
			r.Delete("/{id}", s.deleteVendor)
		})

		r.Get("/rankings/top", s.topVendors)
		r.Get("/overview", s.overview)
		r.Get("/analysis", s.analysis)
		r.Get("/compare", s.compare)
		r.Get("/migration", s.migration)
		r.Get("/risks", s.risks)
		r.Get("/scenarios", s.scenarios)
		r.Get("/weights", s.weights)

		r.Get("/export/json", s.exportJSON)
		r.Get("/export/markdown", s.exportMarkdown)
		r.Post("/import", s.importJSON)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// observeDuration feeds the request histogram, labelled by route pattern so
// vendor IDs do not explode the label space
func (s *Server) observeDuration(next http.Handler) http.Handler {
	if s.metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.ObserveHTTP(r.Method, route, status, time.Since(start))
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
