package app

import (
	"net/http"

	"booking-service/internal/auth/credentials"
	"booking-service/internal/auth/handler"
	"booking-service/internal/booking"
	"booking-service/internal/config"
	"booking-service/internal/db"
	"booking-service/internal/metrics"
	"booking-service/internal/middleware"
	"booking-service/internal/session"
	"booking-service/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services are the long-lived objects the router is built from.
type Services struct {
	Sessions    *session.Manager
	Credentials handler.CredentialService
	Bookings    booking.Repository
	Metrics     *metrics.Counters
	Registry    *prometheus.Registry
}

func newServices(cfg config.Config, database *db.DB) *Services {
	registry := prometheus.NewRegistry()
	counters := metrics.NewCounters(registry)

	sessions := session.NewManager(
		session.NewMemoryStore(),
		session.CookieOptions{
			Secure:   cfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		},
		counters,
	)

	return &Services{
		Sessions:    sessions,
		Credentials: credentials.NewService(database),
		Bookings:    database,
		Metrics:     counters,
		Registry:    registry,
	}
}

func setupRouter(cfg config.Config, svc *Services) (*gin.Engine, error) {

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	gate := middleware.NewGate(svc.Sessions, svc.Metrics)
	requireLogin := middleware.GinRequireLogin(gate)
	requireAdmin := middleware.GinRequireAdmin(gate)

	authHandler := handler.NewHandler(
		svc.Credentials,
		svc.Sessions,
		svc.Metrics,
		cfg.AllowAdminRegistration,
	)
	bookingHandler := booking.NewHandler(svc.Bookings)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestLog(),
		middleware.SecurityHeaders(),
	)
	router.SetHTMLTemplate(tmpl)

	// ----------------------------
	// Public Routes
	// ----------------------------

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(svc.Registry, promhttp.HandlerOpts{})))

	router.StaticFS("/static", web.Static())

	router.GET("/", func(c *gin.Context) {
		rec, ok := svc.Sessions.Get(c.Request)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"LoggedIn": ok,
			"Username": rec.Username,
			"Role":     string(rec.Role),
			"IsAdmin":  ok && rec.IsAdministrator(),
		})
	})

	router.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", nil)
	})

	router.GET("/terms", func(c *gin.Context) {
		c.HTML(http.StatusOK, "terms.html", nil)
	})

	// ----------------------------
	// Auth + Gated Routes
	// ----------------------------

	authHandler.RegisterRoutes(router, requireLogin)
	bookingHandler.RegisterRoutes(router, requireLogin, requireAdmin)

	return router, nil
}
