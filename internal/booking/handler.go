package booking

import (
	"context"
	"net/http"

	"booking-service/internal/db"
	"booking-service/internal/logger"
	"booking-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Repository is the storage the booking handlers need.
type Repository interface {
	ListResources(ctx context.Context) ([]db.Resource, error)
	CreateResource(ctx context.Context, name, description string) (int64, error)
	ListReservations(ctx context.Context) ([]db.Reservation, error)
	CreateReservation(ctx context.Context, r db.NewReservation) (int64, error)
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes mounts the booking routes behind the given gates.
func (h *Handler) RegisterRoutes(r gin.IRouter, requireLogin, requireAdmin gin.HandlerFunc) {
	r.GET("/resources", requireLogin, h.listResources)
	r.GET("/view-resources", requireLogin, h.viewResources)
	r.GET("/add-resource", requireAdmin, h.addResourcePage)
	r.POST("/add-resource", requireAdmin, h.AddResource)

	r.GET("/add-reservation", requireLogin, h.addReservationPage)
	r.POST("/add-reservation", requireLogin, h.AddReservation)
	r.GET("/view-reservations", requireLogin, h.viewReservations)

	api := r.Group("/api", requireLogin)
	api.GET("/reservations", h.listReservations)
	api.GET("/user-role", h.userRole)
}

func (h *Handler) listResources(c *gin.Context) {
	resources, err := h.repo.ListResources(c.Request.Context())
	if err != nil {
		logger.Error("list resources failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Error retrieving resources")
		return
	}

	c.JSON(http.StatusOK, resources)
}

func (h *Handler) viewResources(c *gin.Context) {
	resources, err := h.repo.ListResources(c.Request.Context())
	if err != nil {
		logger.Error("list resources failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Error retrieving resources")
		return
	}

	c.HTML(http.StatusOK, "view-resources.html", gin.H{"Resources": resources})
}

func (h *Handler) addResourcePage(c *gin.Context) {
	c.HTML(http.StatusOK, "add-resource.html", nil)
}

func (h *Handler) addReservationPage(c *gin.Context) {
	resources, err := h.repo.ListResources(c.Request.Context())
	if err != nil {
		// the form still works if someone knows the id
		logger.Warn("list resources for reservation form failed", map[string]any{
			"error": err.Error(),
		})
	}

	c.HTML(http.StatusOK, "add-reservation.html", gin.H{"Resources": resources})
}

func (h *Handler) viewReservations(c *gin.Context) {
	c.HTML(http.StatusOK, "view-reservations.html", nil)
}

func (h *Handler) listReservations(c *gin.Context) {
	reservations, err := h.repo.ListReservations(c.Request.Context())
	if err != nil {
		logger.Error("list reservations failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Error retrieving reservations")
		return
	}

	c.JSON(http.StatusOK, reservations)
}

func (h *Handler) userRole(c *gin.Context) {
	rec, ok := middleware.RecordFromGin(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": rec.Role})
}
