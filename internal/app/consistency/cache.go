package consistency

import (
	"context"
	"log/slog"
	"sync"

	domainconsistency "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/metrics"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
)

// Status is the display state of one player's detail.
type Status string

const (
	StatusIdle        Status = "idle"
	StatusLoading     Status = "loading"
	StatusReady       Status = "ready"
	StatusUnavailable Status = "unavailable"
)

type state int

const (
	stateIdle state = iota
	stateInFlight
	stateSettled
)

type entry struct {
	state  state
	record domainconsistency.Record
	err    error
	done   chan struct{}
}

// Lookup is a point-in-time view of one cache entry.
type Lookup struct {
	Status Status
	Record domainconsistency.Record
	Err    error
}

// Cache holds lazily fetched consistency records keyed by player ID.
// At most one fetch per player is in flight; settled records are served without refetching.
// Failed fetches return the entry to idle so the next Request retries; Refresh forces a refetch.
type Cache struct {
	source  providers.ConsistencySource
	logger  *slog.Logger
	metrics *metrics.Recorder

	mu      sync.Mutex
	entries map[int]*entry
}

// NewCache constructs an empty cache over source.
func NewCache(source providers.ConsistencySource, logger *slog.Logger, recorder *metrics.Recorder) *Cache {
	return &Cache{
		source:  source,
		logger:  logger,
		metrics: recorder,
		entries: make(map[int]*entry),
	}
}

// Request returns the entry for playerID, starting a fetch when it is idle.
// The fetch runs detached from ctx's cancellation and always populates the cache.
func (c *Cache) Request(ctx context.Context, playerID int) Lookup {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[playerID]
	if !ok {
		e = &entry{}
		c.entries[playerID] = e
	}

	switch e.state {
	case stateSettled:
		c.metrics.RecordDetailLookup(metrics.DetailHit)
	case stateInFlight:
		c.metrics.RecordDetailLookup(metrics.DetailPending)
	default:
		e.state = stateInFlight
		e.err = nil
		e.done = make(chan struct{})
		c.metrics.RecordDetailLookup(metrics.DetailFetch)
		go c.fetch(context.WithoutCancel(ctx), playerID, e)
	}
	return lookupOf(e)
}

func (c *Cache) fetch(ctx context.Context, playerID int, e *entry) {
	rec, err := c.source.FetchConsistency(ctx, playerID)

	c.mu.Lock()
	switch {
	case err != nil:
		e.state = stateIdle
		e.err = err
	default:
		e.state = stateSettled
		e.record = rec
	}
	close(e.done)
	c.mu.Unlock()

	if err != nil {
		logger := logging.FromContext(ctx, c.logger)
		logging.Warn(logger, "consistency fetch failed",
			logging.FieldPlayerID, playerID,
			"error", err,
		)
	}
}

// Peek returns the entry for playerID without starting a fetch.
func (c *Cache) Peek(playerID int) Lookup {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[playerID]
	if !ok {
		return Lookup{Status: StatusIdle}
	}
	return lookupOf(e)
}

// Await blocks until the in-flight fetch for playerID (if any) settles or ctx is done.
func (c *Cache) Await(ctx context.Context, playerID int) (Lookup, error) {
	c.mu.Lock()
	var done chan struct{}
	if e, ok := c.entries[playerID]; ok && e.state == stateInFlight {
		done = e.done
	}
	c.mu.Unlock()

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
			return c.Peek(playerID), ctx.Err()
		}
	}
	return c.Peek(playerID), nil
}

// Refresh drops a settled or failed entry for playerID and starts a new fetch.
// A fetch already in flight is returned as is.
func (c *Cache) Refresh(ctx context.Context, playerID int) Lookup {
	c.mu.Lock()
	if e, ok := c.entries[playerID]; ok && e.state != stateInFlight {
		delete(c.entries, playerID)
	}
	c.mu.Unlock()
	return c.Request(ctx, playerID)
}

func lookupOf(e *entry) Lookup {
	switch {
	case e.state == stateInFlight:
		return Lookup{Status: StatusLoading}
	case e.state == stateSettled:
		return Lookup{Status: StatusReady, Record: e.record}
	case e.err != nil:
		return Lookup{Status: StatusUnavailable, Err: e.err}
	default:
		return Lookup{Status: StatusIdle}
	}
}
