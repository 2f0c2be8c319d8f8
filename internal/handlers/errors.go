package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartfurnace/internal/engine"
	"smartfurnace/internal/repository"
	"smartfurnace/internal/service"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusStarted = "started"
	statusDeleted = "deleted"

	errInvalidBodyPref = "invalid body: "
	errListSchedules   = "failed to list schedules"
	errLoadSchedule    = "failed to load schedule"
	errSaveSchedule    = "failed to save schedule"
	errDeleteSchedule  = "failed to delete schedule"
	errEvaluate        = "failed to evaluate schedule"
	errStartCycle      = "failed to start cycle"
	errLoadCycle       = "failed to load cycle"
	errNoReading       = "no reading yet"
)

// ValidationError is the body of a 422 response.
type ValidationError struct {
	Error string `json:"error" example:"step 2: ZeroDuration: duration \"00:00\" must be longer than zero"`
	Kind  string `json:"kind" example:"ZeroDuration"`
	Index int    `json:"index" example:"1"`
	Field string `json:"field,omitempty" example:"duration"`
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondError maps domain errors to client statuses and logs everything
// else as a 500.
func (h *Handler) respondError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	var ee *engine.Error
	switch {
	case errors.As(err, &ee):
		c.JSON(http.StatusUnprocessableEntity, ValidationError{
			Error: ee.Error(),
			Kind:  string(ee.Kind),
			Index: ee.Index,
			Field: ee.Field,
		})
	case errors.Is(err, repository.ErrScheduleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidFilter),
		errors.Is(err, service.ErrUnknownEvent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, userMsg, logKey, err, kv...)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
