package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appstandings "github.com/preston-bernstein/fantasy-hoops-service/internal/app/standings"
	appstrategy "github.com/preston-bernstein/fantasy-hoops-service/internal/app/strategy"
	appteams "github.com/preston-bernstein/fantasy-hoops-service/internal/app/teams"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/poller"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/store"
)

// Services groups the league-level services the handler reads from.
type Services struct {
	Teams     *appteams.Service
	Strategy  *appstrategy.Service
	Standings *appstandings.Service
}

// Handler serves the session, league and health routes.
type Handler struct {
	sessions  *store.SessionStore
	teams     *appteams.Service
	strategy  *appstrategy.Service
	standings *appstandings.Service
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the service is always ready.
func NewHandler(sessions *store.SessionStore, svcs Services, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		sessions:  sessions,
		teams:     svcs.Teams,
		strategy:  svcs.Strategy,
		standings: svcs.Standings,
		logger:    logger,
		statusFn:  statusFn,
	}
}

type healthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

// Health reports the service health and the number of live sessions.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	resp := healthResponse{Status: "ok"}
	if h.sessions != nil {
		resp.Sessions = h.sessions.Len()
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Ready reports readiness for traffic based on the team poller's health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// NotFound is the JSON fallback for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed is the JSON fallback for known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// intParam parses a positive integer route parameter.
func intParam(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
