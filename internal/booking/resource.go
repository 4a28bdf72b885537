package booking

import (
	"net/http"
	"strings"

	"booking-service/internal/logger"

	"github.com/gin-gonic/gin"
)

// AddResource creates a bookable resource. Administrators only.
func (h *Handler) AddResource(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("resource_name"))
	description := strings.TrimSpace(c.PostForm("description"))

	if name == "" || description == "" {
		c.String(http.StatusBadRequest, "All fields are required")
		return
	}

	id, err := h.repo.CreateResource(c.Request.Context(), name, description)
	if err != nil {
		logger.Error("add resource failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Error adding resource")
		return
	}

	logger.Info("resource added", map[string]any{
		"resource_id": id,
	})

	c.Redirect(http.StatusFound, "/")
}
