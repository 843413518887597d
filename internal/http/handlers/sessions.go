package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"imagestudio/internal/studio"
)

// SessionCookie names the cookie carrying the workspace id.
const SessionCookie = "studio_session"

type sessionEntry struct {
	workspace *studio.Workspace
	lastSeen  time.Time
}

// SessionStore keeps one in-memory workspace per browser session.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewSessionStore returns an empty store evicting sessions idle for ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &SessionStore{
		entries: make(map[string]*sessionEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Resolve returns the workspace bound to the request cookie, starting a new
// session (and setting the cookie) when there is none or it expired.
func (s *SessionStore) Resolve(w http.ResponseWriter, r *http.Request) *studio.Workspace {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if ws, ok := s.touchLocked(r, now); ok {
		return ws
	}

	id := uuid.NewString()
	entry := &sessionEntry{workspace: studio.NewWorkspace(), lastSeen: now}
	s.entries[id] = entry
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	return entry.workspace
}

// Lookup returns the workspace bound to the request cookie without creating
// one. Read-only routes use it so cookie-less clients leave no state behind.
func (s *SessionStore) Lookup(r *http.Request) (*studio.Workspace, bool) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchLocked(r, now)
}

func (s *SessionStore) touchLocked(r *http.Request, now time.Time) (*studio.Workspace, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, false
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return nil, false
	}
	entry, ok := s.entries[c.Value]
	if !ok {
		return nil, false
	}
	entry.lastSeen = now
	return entry.workspace, true
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep drops sessions idle for longer than the ttl. Sessions with a call in
// flight are kept.
func (s *SessionStore) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, entry := range s.entries {
		if entry.lastSeen.After(cutoff) {
			continue
		}
		if entry.workspace.Generating() || entry.workspace.Translating() {
			continue
		}
		delete(s.entries, id)
		removed++
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
