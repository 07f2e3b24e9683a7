package rankings

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	appconsistency "github.com/preston-bernstein/fantasy-hoops-service/internal/app/consistency"
	domainrankings "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
)

// Status is the table-level load state.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Table is one session's ranking view: the loaded collection, the active sort, and the expanded row.
// Every method applies its mutation atomically.
type Table struct {
	source  providers.RankingSource
	details *appconsistency.Cache
	logger  *slog.Logger

	loads singleflight.Group

	mu       sync.Mutex
	items    []domainrankings.Entity
	sorted   []domainrankings.Entity
	loaded   bool
	loadErr  error
	selector domainrankings.Selector
	expanded int
	isOpen   bool
}

// NewTable constructs an unloaded table. Rows start in the source's rank order.
func NewTable(source providers.RankingSource, details *appconsistency.Cache, logger *slog.Logger) *Table {
	return &Table{
		source:  source,
		details: details,
		logger:  logger,
	}
}

// Load fetches the collection once; concurrent first calls share one fetch. Once loaded, Load only
// clears the warning left by a failed Reload.
func (t *Table) Load(ctx context.Context) error {
	t.mu.Lock()
	loaded := t.loaded
	if loaded {
		t.loadErr = nil
	}
	t.mu.Unlock()
	if loaded {
		return nil
	}
	return t.fetch(ctx, false)
}

// Reload fetches the collection again. On failure the prior collection stays in place and the error is returned.
func (t *Table) Reload(ctx context.Context) error {
	return t.fetch(ctx, true)
}

func (t *Table) fetch(ctx context.Context, force bool) error {
	_, err, _ := t.loads.Do("rankings", func() (interface{}, error) {
		if !force {
			t.mu.Lock()
			loaded := t.loaded
			t.mu.Unlock()
			if loaded {
				return nil, nil
			}
		}
		items, err := t.source.FetchRankings(ctx)

		t.mu.Lock()
		defer t.mu.Unlock()
		if err != nil {
			t.loadErr = err
			logging.Warn(logging.FromContext(ctx, t.logger), "rankings load failed",
				"error", err,
				"has_prior", t.loaded,
			)
			return nil, err
		}
		t.items = items
		t.loaded = true
		t.loadErr = nil
		t.sorted = Sort(t.items, t.selector)
		if t.isOpen && !t.containsLocked(t.expanded) {
			t.isOpen = false
		}
		return nil, nil
	})
	return err
}

// SetSort applies the toggle policy for key and re-sorts. An empty key restores rank order.
func (t *Table) SetSort(key domainrankings.Key) domainrankings.Selector {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selector = Toggle(t.selector, key)
	t.sorted = Sort(t.items, t.selector)
	return t.selector
}

// Selector returns the active sort.
func (t *Table) Selector() domainrankings.Selector {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selector
}

// ToggleExpand collapses playerID when it is the expanded row; otherwise it expands it, collapsing
// any other row, and requests its detail. Collapsing never cancels a fetch. It reports whether
// the row is expanded afterwards.
func (t *Table) ToggleExpand(ctx context.Context, playerID int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.containsLocked(playerID) {
		return false, fmt.Errorf("player %d: %w", playerID, providers.ErrNotFound)
	}
	if t.isOpen && t.expanded == playerID {
		t.isOpen = false
		return false, nil
	}
	t.expanded = playerID
	t.isOpen = true
	if t.details != nil {
		t.details.Request(ctx, playerID)
	}
	return true, nil
}

// RefreshDetail refetches playerID's consistency record, replacing a settled or failed entry.
func (t *Table) RefreshDetail(ctx context.Context, playerID int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.containsLocked(playerID) {
		return fmt.Errorf("player %d: %w", playerID, providers.ErrNotFound)
	}
	if t.details != nil {
		t.details.Refresh(ctx, playerID)
	}
	return nil
}

// Expanded returns the expanded player ID, if any.
func (t *Table) Expanded() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.expanded, t.isOpen
}

// AwaitExpanded blocks until the expanded row's detail fetch settles or ctx is done.
func (t *Table) AwaitExpanded(ctx context.Context) error {
	id, ok := t.Expanded()
	if !ok || t.details == nil {
		return nil
	}
	_, err := t.details.Await(ctx, id)
	return err
}

// View returns a snapshot of the sorted rows with the expanded row's detail.
func (t *Table) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()

	v := View{
		Status: t.statusLocked(),
		Sort:   t.selector,
		Count:  len(t.sorted),
		Rows:   make([]Row, 0, len(t.sorted)),
	}
	if v.Status == StatusError {
		v.Error = t.loadErr.Error()
	} else if t.loadErr != nil {
		v.Warning = t.loadErr.Error()
	}
	if t.isOpen {
		id := t.expanded
		v.ExpandedID = &id
	}
	for _, e := range t.sorted {
		row := newRow(e, t.selector)
		if t.isOpen && e.ID == t.expanded {
			row.Expanded = true
			if t.details != nil {
				row.Detail = newDetail(t.details.Peek(e.ID))
			}
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

func (t *Table) statusLocked() Status {
	switch {
	case t.loaded:
		return StatusReady
	case t.loadErr != nil:
		return StatusError
	default:
		return StatusLoading
	}
}

func (t *Table) containsLocked(playerID int) bool {
	for _, e := range t.items {
		if e.ID == playerID {
			return true
		}
	}
	return false
}
