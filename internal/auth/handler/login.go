package handler

import (
	"errors"
	"net/http"

	"booking-service/internal/auth/credentials"
	"booking-service/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.credentialService.Authenticate(
		c.Request.Context(),
		username,
		password,
	)

	if err != nil {
		if errors.Is(err, credentials.ErrInvalidCredentials) {
			h.metrics.RecordLoginFailure()
			logger.Info("login rejected", map[string]any{
				"username":  username,
				"client_ip": c.ClientIP(),
			})
			c.String(http.StatusUnauthorized, "Invalid username or password")
			return
		}

		logger.Error("login failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Error during login")
		return
	}

	if _, err := h.sessions.Create(c.Writer, user.Principal()); err != nil {
		c.String(http.StatusInternalServerError, "Error during login")
		return
	}

	c.Redirect(http.StatusFound, "/")
}
