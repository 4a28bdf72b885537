package handler

import (
	"context"
	"net/http"

	"booking-service/internal/auth/credentials"
	"booking-service/internal/logger"
	"booking-service/internal/metrics"
	"booking-service/internal/middleware"
	"booking-service/internal/session"

	"github.com/gin-gonic/gin"
)

// CredentialService is the user store the handlers authenticate against.
type CredentialService interface {
	Register(ctx context.Context, reg credentials.Registration) (credentials.User, error)
	Authenticate(ctx context.Context, username, password string) (credentials.User, error)
	UserByID(ctx context.Context, id int64) (credentials.User, error)
}

type Handler struct {
	credentialService CredentialService
	sessions          *session.Manager
	metrics           *metrics.Counters

	// allowAdminRegistration lets the sign-up form request the
	// administrator role.
	allowAdminRegistration bool
}

func NewHandler(
	credentialService CredentialService,
	sessions *session.Manager,
	counters *metrics.Counters,
	allowAdminRegistration bool,
) *Handler {
	return &Handler{
		credentialService:      credentialService,
		sessions:               sessions,
		metrics:                counters,
		allowAdminRegistration: allowAdminRegistration,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter, requireLogin gin.HandlerFunc) {
	r.GET("/login", h.loginPage)
	r.POST("/login", h.Login)
	r.GET("/register", h.registerPage)
	r.POST("/register", h.Register)
	r.GET("/logout", h.Logout)
	r.GET("/account", requireLogin, h.Account)
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *Handler) registerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

// Logout drops the caller's session, if any, and sends them home.
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.Destroy(c.Writer, c.Request)
	c.Redirect(http.StatusFound, "/")
}

// Account shows the signed-in user's profile. The email address is not
// part of the session, so it is read from the user table.
func (h *Handler) Account(c *gin.Context) {
	rec, ok := middleware.RecordFromGin(c)
	if !ok {
		c.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}

	data := gin.H{
		"Username": rec.Username,
		"Role":     string(rec.Role),
	}

	if rec.UserID != nil {
		u, err := h.credentialService.UserByID(c.Request.Context(), *rec.UserID)
		if err != nil {
			logger.Warn("account lookup failed", map[string]any{
				"user_id": *rec.UserID,
				"error":   err.Error(),
			})
		} else {
			data["Email"] = u.Email
		}
	}

	c.HTML(http.StatusOK, "account.html", data)
}
