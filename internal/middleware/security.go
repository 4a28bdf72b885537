package middleware

import (
	"net/http"

	"booking-service/internal/logger"

	"github.com/gin-gonic/gin"
)

const contentSecurityPolicy = "default-src 'self'; script-src 'self'; style-src 'self'; " +
	"img-src 'self'; connect-src 'self'; frame-ancestors 'none'; form-action 'self';"

// SecurityHeaders sets the browser hardening headers on every response.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Content-Security-Policy", contentSecurityPolicy)
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		c.Next()
	}
}

// Recovery turns a panic in a handler into a plain 500 response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("internal server error", map[string]any{
			"path":  c.Request.URL.Path,
			"panic": recovered,
		})
		c.String(http.StatusInternalServerError, "An error occurred. Please try again later.")
		c.Abort()
	})
}
