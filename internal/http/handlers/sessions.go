package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	apprankings "github.com/preston-bernstein/fantasy-hoops-service/internal/app/rankings"
	domainrankings "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	domainschedule "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/store"
)

type createSessionResponse struct {
	ID       string           `json:"id"`
	Rankings apprankings.View `json:"rankings"`
}

type sortRequest struct {
	Key string `json:"key"`
}

// CreateSession starts a session and performs its initial rankings load.
// A failed load still creates the session; the view carries the blocking error.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Create()
	logger := loggerFromContext(r, h.logger)
	if err := sess.Rankings.Load(r.Context()); err != nil {
		logging.Warn(logger, "initial rankings load failed",
			logging.FieldSessionID, sess.ID,
			"error", err,
		)
	}
	view := sess.Rankings.View()
	logging.Info(logger, "session created",
		logging.FieldSessionID, sess.ID,
		logging.FieldCount, view.Count,
	)
	writeJSON(w, http.StatusCreated, createSessionResponse{ID: sess.ID, Rankings: view}, h.logger)
}

// DeleteSession discards a session.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.Delete(chi.URLParam(r, "sessionID")) {
		writeError(w, r, http.StatusNotFound, "session not found", h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Rankings returns the session's current table view.
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Rankings.View(), h.logger)
}

// LoadRankings is the manual retry action. With force=true it refetches even after a successful load;
// a failed refetch keeps the prior rows and reports the failure as a warning on the view.
func (h *Handler) LoadRankings(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))
	load := sess.Rankings.Load
	if force {
		load = sess.Rankings.Reload
	}
	err := load(r.Context())
	view := sess.Rankings.View()
	if err != nil && view.Status == apprankings.StatusError {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// SortRankings applies the sort toggle for the requested key. An empty key restores rank order.
func (h *Handler) SortRankings(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req sortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	var key domainrankings.Key
	if strings.TrimSpace(req.Key) != "" {
		parsed, valid := domainrankings.ParseKey(req.Key)
		if !valid {
			writeError(w, r, http.StatusBadRequest, "unknown sort key", h.logger)
			return
		}
		key = parsed
	}
	sel := sess.Rankings.SetSort(key)
	logging.Info(loggerFromContext(r, h.logger), "rankings sorted",
		logging.FieldSortKey, sel.Key,
		"direction", sel.Direction,
	)
	writeJSON(w, http.StatusOK, sess.Rankings.View(), h.logger)
}

// ExpandRow toggles a row's detail panel. With wait=true it blocks until the detail settles or the request ends.
func (h *Handler) ExpandRow(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	playerID, ok := intParam(r, "playerID")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	open, err := sess.Rankings.ToggleExpand(r.Context(), playerID)
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); wait && open {
		if err := sess.Rankings.AwaitExpanded(r.Context()); err != nil {
			logging.Info(loggerFromContext(r, h.logger), "detail still loading",
				logging.FieldPlayerID, playerID,
				"error", err,
			)
		}
	}
	writeJSON(w, http.StatusOK, sess.Rankings.View(), h.logger)
}

// RefreshDetail refetches one player's consistency record for the session, replacing a cached or
// failed result. With wait=true it blocks like ExpandRow when that player's row is expanded.
func (h *Handler) RefreshDetail(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	playerID, ok := intParam(r, "playerID")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	if err := sess.Rankings.RefreshDetail(r.Context(), playerID); err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "detail refresh requested",
		logging.FieldSessionID, sess.ID,
		logging.FieldPlayerID, playerID,
	)
	if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); wait {
		if id, open := sess.Rankings.Expanded(); open && id == playerID {
			_ = sess.Rankings.AwaitExpanded(r.Context())
		}
	}
	writeJSON(w, http.StatusOK, sess.Rankings.View(), h.logger)
}

// Schedule selects a matchup window and highlight for the session and returns the annotated page.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	q, err := h.scheduleQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	page, err := sess.Schedule.Select(r.Context(), q)
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, page, h.logger)
}

func (h *Handler) scheduleQuery(r *http.Request) (domainschedule.Query, error) {
	params := r.URL.Query()
	window, ok := domainschedule.ParseWindow(params.Get("window"))
	if !ok {
		return domainschedule.Query{}, errors.New("invalid window (expected current or upcoming)")
	}
	q := domainschedule.Query{Window: window}
	if raw := strings.TrimSpace(params.Get("highlight")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			return domainschedule.Query{}, errors.New("invalid highlight team id")
		}
		q.Highlight = id
	}
	if h.teams != nil && len(h.teams.Teams()) > 0 && !h.teams.IsHighlightable(q.Highlight) {
		return domainschedule.Query{}, errors.New("unknown highlight team")
	}
	return q, nil
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	sess, ok := h.sessions.Get(chi.URLParam(r, "sessionID"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "session not found", h.logger)
		return nil, false
	}
	return sess, true
}
