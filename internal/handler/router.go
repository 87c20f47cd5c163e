package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Router builds the chi router for the API. events and metrics are mounted
// as-is so the hub and the Prometheus handler keep their own semantics.
func Router(h *GraphHandler, events http.Handler, metrics http.Handler, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/graph", h.GetGraph)
		r.Get("/nodes/*", h.GetNode)
		r.Get("/status", h.GetStatus)
		r.Post("/reload", h.Reload)
		r.Get("/export/json", h.ExportJSON)
		r.Get("/export/yaml", h.ExportYAML)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.CreateSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Delete("/", h.DeleteSession)
				r.Get("/snapshot", h.GetSnapshot)
				r.Post("/dimensions", h.SetDimensions)
				r.Post("/focus", h.Focus)
				r.Post("/search", h.Search)
				r.Post("/click", h.Click)
				r.Post("/switch", h.ActivateSwitch)
				r.Post("/viewport/{op}", h.Viewport)
			})
		})
	})

	r.Handle("/events", events)
	r.Handle("/metrics", metrics)

	return r
}

// requestLogger logs each request with latency and status
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}
