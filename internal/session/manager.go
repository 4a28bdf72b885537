package session

import (
	"context"
	"net/http"
	"time"

	"booking-service/internal/logger"
	"booking-service/internal/metrics"
)

// TTL is how long a session stays valid after creation. There is no
// sliding renewal.
const TTL = 30 * time.Minute

// Manager creates, resolves and destroys sessions on behalf of HTTP
// handlers. It owns token generation, the session cookie and expiry.
type Manager struct {
	store   Store
	cookie  CookieOptions
	metrics *metrics.Counters

	now      func() time.Time
	newToken func() (string, error)
}

// NewManager wires a manager to the given store. counters may be nil.
func NewManager(store Store, cookie CookieOptions, counters *metrics.Counters) *Manager {
	return &Manager{
		store:    store,
		cookie:   cookie,
		metrics:  counters,
		now:      time.Now,
		newToken: GenerateToken,
	}
}

// Create mints a session for p, stores it and sets exactly one
// Set-Cookie header on w. It returns the new token. On error nothing is
// stored and no cookie is written.
func (m *Manager) Create(w http.ResponseWriter, p Principal) (string, error) {
	token, err := m.newToken()
	if err != nil {
		logger.Error("session token generation failed", map[string]any{
			"error": err.Error(),
		})
		return "", err
	}

	rec := NewRecord(p, m.now())
	m.store.Put(token, rec)

	SetCookie(w, token, int(TTL.Seconds()), m.cookie)

	m.metrics.RecordSessionCreated()
	logger.Info("session created", map[string]any{
		"session":  shortToken(token),
		"username": rec.Username,
		"role":     string(rec.Role),
	})

	return token, nil
}

// Get resolves the session carried by r. Every failure (no cookie, no
// session_id, unknown token, stale record) yields ok == false. Stale
// records are evicted as a side effect.
func (m *Manager) Get(r *http.Request) (Record, bool) {
	token, ok := TokenFromRequest(r)
	if !ok {
		logger.Debug("no session cookie on request", nil)
		return Record{}, false
	}

	return m.lookup(token)
}

func (m *Manager) lookup(token string) (Record, bool) {
	rec, ok := m.store.Get(token)
	if !ok {
		logger.Debug("session not found", map[string]any{
			"session": shortToken(token),
		})
		return Record{}, false
	}

	if m.expired(rec) {
		// Only evict if the record is still the stale one we saw.
		if m.store.RemoveIf(token, m.expired) {
			m.metrics.RecordSessionExpired()
			logger.Info("session expired", map[string]any{
				"session":  shortToken(token),
				"username": rec.Username,
			})
		}
		return Record{}, false
	}

	return rec, true
}

// Destroy removes the session named by r's cookie and clears the cookie
// on w. Without a session cookie it does nothing.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	token, ok := TokenFromRequest(r)
	if !ok {
		return
	}

	m.store.Remove(token)
	ClearCookie(w, m.cookie)

	m.metrics.RecordSessionDestroyed()
	logger.Info("session destroyed", map[string]any{
		"session": shortToken(token),
	})
}

func (m *Manager) expired(rec Record) bool {
	return rec.Expired(m.now(), TTL)
}

// RunReaper periodically drops stale sessions until ctx is done. It is
// optional housekeeping; Get enforces expiry on its own.
func (m *Manager) RunReaper(ctx context.Context, interval time.Duration) {
	sw, ok := m.store.(Sweeper)
	if !ok || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := sw.Sweep(m.now(), TTL)
			m.metrics.RecordSessionsSwept(n)
			if n > 0 {
				logger.Debug("swept stale sessions", map[string]any{
					"count": n,
				})
			}
		}
	}
}
