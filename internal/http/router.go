package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/http/handlers"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/http/middleware"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/http/requestutil"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/metrics"
)

// RouterConfig carries the cross-cutting pieces the router installs.
type RouterConfig struct {
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CorsOrigins []string
	// Admin mounts the admin routes when non-nil.
	Admin *handlers.AdminHandler
}

// NewRouter registers every HTTP route on a chi router.
func NewRouter(handler *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodDelete, nethttp.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders:   []string{requestutil.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Get("/teams", handler.Teams)
	r.Get("/teams/{teamID}/strategy", handler.Strategy)
	r.Get("/standings", handler.Standings)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", handler.CreateSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Delete("/", handler.DeleteSession)
			r.Get("/rankings", handler.Rankings)
			r.Post("/rankings/load", handler.LoadRankings)
			r.Post("/rankings/sort", handler.SortRankings)
			r.Post("/rankings/expand/{playerID}", handler.ExpandRow)
			r.Post("/rankings/details/{playerID}/refresh", handler.RefreshDetail)
			r.Get("/schedule", handler.Schedule)
		})
	})

	if cfg.Admin != nil {
		r.Post("/admin/snapshots/export", cfg.Admin.ExportSnapshots)
	}
	return r
}
