package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	apprankings "github.com/preston-bernstein/fantasy-hoops-service/internal/app/rankings"
	appschedule "github.com/preston-bernstein/fantasy-hoops-service/internal/app/schedule"
)

const defaultSessionTTL = 30 * time.Minute

// Session is one client's view state: a ranking table (with its detail cache) and a schedule view.
type Session struct {
	ID        string
	CreatedAt time.Time
	Rankings  *apprankings.Table
	Schedule  *appschedule.View

	lastSeen time.Time
}

// SessionFactory builds the per-session components.
type SessionFactory func() (*apprankings.Table, *appschedule.View)

// SessionStore tracks sessions by ID and expires them after a period of inactivity.
// Expired sessions are swept lazily on access.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	build    SessionFactory
	now      func() time.Time
}

// NewSessionStore constructs an empty store. A non-positive ttl uses the default.
func NewSessionStore(ttl time.Duration, build SessionFactory) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		build:    build,
		now:      time.Now,
	}
}

// Create registers a new session with freshly built components.
func (s *SessionStore) Create() *Session {
	table, view := s.build()

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Rankings:  table,
		Schedule:  view,
		lastSeen:  now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns a live session and marks it as active.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

// Delete removes a session, reporting whether it existed.
func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now())
	return len(s.sessions)
}

func (s *SessionStore) sweepLocked(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
