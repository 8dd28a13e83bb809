package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CookieName carries the session identifier between requests.
const CookieName = "qb_session"

// Config holds session lifecycle settings.
type Config struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// DefaultConfig returns the default session lifecycle settings.
func DefaultConfig() Config {
	return Config{
		TTL:           2 * time.Hour,
		SweepInterval: 10 * time.Minute,
	}
}

// Manager owns all live sessions, keyed by generated identifier. Idle
// sessions are swept periodically so the map stays bounded.
type Manager struct {
	cfg    Config
	logger zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session

	done chan struct{}
	once sync.Once
}

// NewManager creates a session manager and starts its sweeper.
func NewManager(cfg Config, logger zerolog.Logger) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultConfig().SweepInterval
	}

	m := &Manager{
		cfg:      cfg,
		logger:   logger.With().Str("component", "session-manager").Logger(),
		sessions: make(map[string]*Session),
		done:     make(chan struct{}),
	}

	go m.sweep()

	return m
}

// Close stops the sweeper.
func (m *Manager) Close() {
	m.once.Do(func() { close(m.done) })
}

// GetOrCreate resolves the request's session from its cookie, creating
// a new session (and setting the cookie) when none exists.
func (m *Manager) GetOrCreate(w http.ResponseWriter, r *http.Request) *Session {
	if cookie, err := r.Cookie(CookieName); err == nil {
		m.mu.Lock()
		if sess, ok := m.sessions[cookie.Value]; ok {
			m.mu.Unlock()
			sess.touch()
			return sess
		}
		m.mu.Unlock()
	}

	sess := New(uuid.NewString())

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	m.logger.Debug().Str("session_id", sess.ID).Msg("session created")

	return sess
}

// Get returns the session with the given ID, or nil.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) sweep() {
	ticker := time.NewTicker(m.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.expireIdle(time.Now().Add(-m.cfg.TTL))
		}
	}
}

func (m *Manager) expireIdle(cutoff time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, sess := range m.sessions {
		if sess.idleSince(cutoff) {
			delete(m.sessions, id)
			m.logger.Debug().Str("session_id", id).Msg("session expired")
		}
	}
}

// ctxKey is the context key type for request-scoped sessions.
type ctxKey struct{}

// NewContext stores the session in a context.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext retrieves the session from a context, or nil.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(ctxKey{}).(*Session)
	return sess
}
