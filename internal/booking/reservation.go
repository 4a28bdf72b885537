package booking

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"booking-service/internal/db"
	"booking-service/internal/logger"
	"booking-service/internal/middleware"
	"booking-service/internal/session"

	"github.com/gin-gonic/gin"
)

// MinimumAge is the age a user must exceed to book a resource.
const MinimumAge = 15

var errInvalidTime = errors.New("invalid time")

// timeLayouts are accepted for start_time and end_time. The first one is
// what an HTML datetime-local input submits.
var timeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// CanReserve reports whether the session holder is old enough to book.
// Sessions without a known age are refused.
func CanReserve(rec session.Record) bool {
	return rec.Age != nil && *rec.Age > MinimumAge
}

// AddReservation books a resource for the signed-in user.
func (h *Handler) AddReservation(c *gin.Context) {
	rec, ok := middleware.RecordFromGin(c)
	if !ok {
		c.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}

	resourceID := strings.TrimSpace(c.PostForm("resource_id"))
	start := strings.TrimSpace(c.PostForm("start_time"))
	end := strings.TrimSpace(c.PostForm("end_time"))
	purpose := strings.TrimSpace(c.PostForm("purpose"))

	if resourceID == "" || start == "" || end == "" || purpose == "" {
		c.String(http.StatusBadRequest, "All fields are required")
		return
	}

	if !CanReserve(rec) {
		c.String(http.StatusForbidden, "Only users over 15 years old can book a resource.")
		return
	}

	id, err := strconv.ParseInt(resourceID, 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid resource")
		return
	}

	startTime, err := parseTime(start)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid start time")
		return
	}
	endTime, err := parseTime(end)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid end time")
		return
	}
	if !endTime.After(startTime) {
		c.String(http.StatusBadRequest, "End time must be after start time")
		return
	}

	reservationID, err := h.repo.CreateReservation(c.Request.Context(), db.NewReservation{
		ResourceID: id,
		UserID:     rec.UserID,
		StartTime:  startTime,
		EndTime:    endTime,
		Purpose:    purpose,
	})
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			c.String(http.StatusBadRequest, "Invalid resource")
			return
		}
		logger.Error("add reservation failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Error adding reservation")
		return
	}

	logger.Info("reservation added", map[string]any{
		"reservation_id": reservationID,
		"resource_id":    id,
		"username":       rec.Username,
	})

	c.Redirect(http.StatusFound, "/")
}

// parseTime reads a form timestamp. Values without a zone are taken as UTC.
func parseTime(v string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errInvalidTime
}
