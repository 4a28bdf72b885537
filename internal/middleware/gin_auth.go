package middleware

import (
	"net/http"

	"booking-service/internal/session"

	"github.com/gin-gonic/gin"
)

// ContextKey is the gin context key holding the session.Record once a
// gate has let the request through.
const ContextKey = "session"

// GinRequireLogin adapts Gate.RequireLogin to Gin.
func GinRequireLogin(g *Gate) gin.HandlerFunc {
	return ginGate(g.RequireLogin)
}

// GinRequireAdmin adapts Gate.RequireAdmin to Gin.
func GinRequireAdmin(g *Gate) gin.HandlerFunc {
	return ginGate(g.RequireAdmin)
}

func ginGate(wrap func(http.Handler) http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		passed := false

		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			if rec, ok := RecordFromContext(r.Context()); ok {
				c.Set(ContextKey, rec)
			}
			c.Next()
		})

		wrap(next).ServeHTTP(c.Writer, c.Request)

		// The gate answered the request itself; stop the Gin chain.
		if !passed {
			c.Abort()
		}
	}
}

// RecordFromGin returns the session record stored by a Gin gate.
func RecordFromGin(c *gin.Context) (session.Record, bool) {
	v, ok := c.Get(ContextKey)
	if !ok {
		return session.Record{}, false
	}
	rec, ok := v.(session.Record)
	return rec, ok
}
