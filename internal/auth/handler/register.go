package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"booking-service/internal/auth/credentials"
	"booking-service/internal/logger"
	"booking-service/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	if c.PostForm("accept_tos") == "" {
		c.String(http.StatusBadRequest, "You must accept the terms of service to register.")
		return
	}

	reg := credentials.Registration{
		Username:     strings.TrimSpace(c.PostForm("username")),
		Password:     c.PostForm("password"),
		Role:         h.registrationRole(c.PostForm("role")),
		Email:        strings.TrimSpace(c.PostForm("email")),
		PhoneNumber:  strings.TrimSpace(c.PostForm("phone_number")),
		ConsentGiven: c.PostForm("consent_given") == "on",
	}

	if raw := strings.TrimSpace(c.PostForm("age")); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil || age < 0 {
			c.String(http.StatusBadRequest, "Age must be a non-negative number")
			return
		}
		reg.Age = &age
	}

	user, err := h.credentialService.Register(c.Request.Context(), reg)
	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrUsernameRequired),
			errors.Is(err, credentials.ErrPasswordRequired):
			c.String(http.StatusBadRequest, "Username and password are required")
		case errors.Is(err, credentials.ErrAlreadyRegistered):
			c.String(http.StatusConflict, "Username already taken")
		default:
			logger.Error("registration failed", map[string]any{
				"error": err.Error(),
			})
			c.String(http.StatusInternalServerError, "Error during registration")
		}
		return
	}

	logger.Info("user registered", map[string]any{
		"user_id": user.ID,
		"role":    string(user.Role),
	})

	if _, err := h.sessions.Create(c.Writer, user.Principal()); err != nil {
		c.String(http.StatusInternalServerError, "Error during registration")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) registrationRole(requested string) session.Role {
	if session.Role(requested).IsAdministrator() && h.allowAdminRegistration {
		return session.RoleAdministrator
	}
	return session.RoleReserver
}
