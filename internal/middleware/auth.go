package middleware

import (
	"context"
	"net/http"

	"booking-service/internal/logger"
	"booking-service/internal/metrics"
	"booking-service/internal/session"
)

const (
	LoginPath = "/login"

	accessDeniedMessage = "Access denied. Admins only."
)

// unexported, collision-proof context key
type recordContextKeyType struct{}

var recordKey = recordContextKeyType{}

// RecordFromContext returns the session record attached by a gate.
func RecordFromContext(ctx context.Context) (session.Record, bool) {
	rec, ok := ctx.Value(recordKey).(session.Record)
	return rec, ok
}

// WithRecord returns a copy of ctx carrying rec.
func WithRecord(ctx context.Context, rec session.Record) context.Context {
	return context.WithValue(ctx, recordKey, rec)
}

// Gate runs authorization checks in front of route handlers. A rejected
// request never reaches the wrapped handler.
type Gate struct {
	Sessions *session.Manager
	Metrics  *metrics.Counters
}

func NewGate(sessions *session.Manager, counters *metrics.Counters) *Gate {
	return &Gate{Sessions: sessions, Metrics: counters}
}

// RequireLogin redirects anonymous requests to the login page.
func (g *Gate) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec, ok := g.Sessions.Get(r)
		if !ok {
			g.Metrics.RecordGateRejection("login")
			logger.Debug("login required", map[string]any{
				"path": r.URL.Path,
			})
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithRecord(r.Context(), rec)))
	})
}

// RequireAdmin rejects anyone who is not an administrator with 403.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec, ok := g.Sessions.Get(r)
		if !ok || !rec.IsAdministrator() {
			g.Metrics.RecordGateRejection("admin")
			logger.Warn("administrator access denied", map[string]any{
				"path":          r.URL.Path,
				"authenticated": ok,
				"username":      rec.Username,
			})
			http.Error(w, accessDeniedMessage, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithRecord(r.Context(), rec)))
	})
}
