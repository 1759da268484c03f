package web

// sessions.go keys each browser to its own view state. Sessions are
// in-memory only; nothing persists across server restarts, matching the
// datasets themselves.

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/jaeyk/wop-organizations-map/internal/metrics"
	"github.com/jaeyk/wop-organizations-map/internal/viewstate"
)

const sessionCookie = "orgmap_session"

// sessionStore holds per-session view states guarded by a mutex. Handlers
// run concurrently; the states themselves are immutable values swapped
// wholesale by put.
type sessionStore struct {
	mu     sync.Mutex
	states map[string]viewstate.State
}

func newSessionStore() *sessionStore {
	return &sessionStore{states: make(map[string]viewstate.State)}
}

func (st *sessionStore) get(id string) (viewstate.State, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.states[id]
	return s, ok
}

func (st *sessionStore) put(id string, s viewstate.State) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, exists := st.states[id]; !exists {
		metrics.Sessions.Inc()
	}
	st.states[id] = s
}

// session returns the caller's session ID and view state, creating both and
// setting the cookie when the request carries none.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (string, viewstate.State) {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		if state, ok := s.sessions.get(c.Value); ok {
			return c.Value, state
		}
	}

	id := uuid.NewString()
	state := viewstate.New()
	s.sessions.put(id, state)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, state
}
