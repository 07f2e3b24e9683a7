package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/http/requestutil"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers/snapshot"
)

// Exporter writes a full snapshot of the active data source.
type Exporter interface {
	Run(ctx context.Context) (snapshot.Summary, error)
}

// AdminHandler exposes admin-only endpoints guarded by a bearer token.
type AdminHandler struct {
	exporter Exporter
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token disables every admin route.
func NewAdminHandler(exporter Exporter, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		exporter: exporter,
		token:    token,
		logger:   logger,
	}
}

// ExportSnapshots writes snapshot files for rankings, consistency, schedules, teams, and rosters.
func (h *AdminHandler) ExportSnapshots(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			logging.FieldPath, r.URL.Path,
			"client_ip", requestutil.ClientIP(r),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.exporter == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot export not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	summary, err := h.exporter.Run(r.Context())
	if err != nil {
		logging.Warn(logger, "admin snapshot export failed", "error", err)
		writeSourceError(w, r, err, h.logger)
		return
	}
	logging.Info(logger, "admin snapshot export complete",
		"rankings", summary.Rankings,
		"records", summary.Records,
		"teams", summary.Teams,
		logging.FieldDurationMS, summary.Duration.Milliseconds(),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"summary": summary,
	}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	want := "Bearer " + h.token
	return subtle.ConstantTimeCompare([]byte(r.Header.Get("Authorization")), []byte(want)) == 1
}
