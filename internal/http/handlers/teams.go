package handlers

import (
	"net/http"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
)

// Teams lists the league teams for the highlight selector.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	items := h.teams.Teams()
	logging.Info(loggerFromContext(r, h.logger), "served teams", logging.FieldCount, len(items))
	writeJSON(w, http.StatusOK, items, h.logger)
}

// Strategy returns the roster composition insight for one team.
func (h *Handler) Strategy(w http.ResponseWriter, r *http.Request) {
	teamID, ok := intParam(r, "teamID")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	insight, err := h.strategy.Insight(r.Context(), teamID)
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, insight, h.logger)
}

// Standings returns the rendered league table.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	view, err := h.standings.Standings(r.Context())
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}
