package schedule

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	domainschedule "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/metrics"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
)

// ErrStaleResponse marks a response that arrived after a newer Select superseded its request.
var ErrStaleResponse = errors.New("stale schedule response")

// Snapshot is the view's latest accepted state.
type Snapshot struct {
	Query   domainschedule.Query `json:"query"`
	Pending bool                 `json:"pending"`
	Error   string               `json:"error,omitempty"`
	Page    *Page                `json:"page,omitempty"`
}

// View holds one session's schedule selection. Each Select supersedes every earlier one;
// responses to superseded requests are discarded rather than rendered.
type View struct {
	source  providers.ScheduleSource
	logger  *slog.Logger
	metrics *metrics.Recorder

	mu         sync.Mutex
	generation uint64
	query      domainschedule.Query
	pending    bool
	page       *Page
	err        error
}

// NewView constructs an empty schedule view over source.
func NewView(source providers.ScheduleSource, logger *slog.Logger, recorder *metrics.Recorder) *View {
	return &View{
		source:  source,
		logger:  logger,
		metrics: recorder,
	}
}

// Select fetches and aggregates the page for q. It returns ErrStaleResponse when another Select
// started while this one was in flight; in that case the view is left untouched.
// A fetch failure is kept as the page-level error and the previous page is cleared.
func (v *View) Select(ctx context.Context, q domainschedule.Query) (Page, error) {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.query = q
	v.pending = true
	v.mu.Unlock()

	raw, err := v.source.FetchSchedule(ctx, q)

	v.mu.Lock()
	defer v.mu.Unlock()
	logger := logging.FromContext(ctx, v.logger)
	if gen != v.generation {
		v.metrics.RecordStaleResponse()
		logging.Info(logger, "discarding stale schedule response",
			logging.FieldWindow, q.Window,
			logging.FieldTeamID, q.Highlight,
		)
		return Page{}, ErrStaleResponse
	}
	v.pending = false
	if err != nil {
		v.err = err
		v.page = nil
		logging.Warn(logger, "schedule fetch failed",
			logging.FieldWindow, q.Window,
			logging.FieldTeamID, q.Highlight,
			"error", err,
		)
		return Page{}, err
	}
	page := Aggregate(raw)
	v.page = &page
	v.err = nil
	return page, nil
}

// Current returns the latest accepted state.
func (v *View) Current() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := Snapshot{Query: v.query, Pending: v.pending, Page: v.page}
	if v.err != nil {
		s.Error = v.err.Error()
	}
	return s
}
