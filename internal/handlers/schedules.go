package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"smartfurnace/internal/engine"
	"smartfurnace/internal/models"
)

// SaveScheduleRequest is the body of PUT /api/v1/schedules/{name}.
type SaveScheduleRequest struct {
	Steps []models.Step `json:"steps"`
}

// @Summary      List schedules
// @Tags         schedules
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, schedules"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/schedules [get]
func (h *Handler) listSchedules(c *gin.Context) {
	names, err := h.services.Schedules.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListSchedules, "schedules_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":     len(names),
		"schedules": names,
	})
}

// @Summary      Get schedule
// @Tags         schedules
// @Produce      json
// @Param        name  path      string  true  "Schedule name"
// @Success      200   {object}  models.Schedule
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/schedules/{name} [get]
func (h *Handler) getSchedule(c *gin.Context) {
	name := c.Param("name")
	s, err := h.services.Schedules.Get(c.Request.Context(), name)
	if err != nil {
		h.respondError(c, errLoadSchedule, "schedule_get_failed", err, "schedule", name)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary      Save schedule
// @Description  Validates and replaces the named schedule. Nothing is stored when validation fails.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        name  path      string               true  "Schedule name"
// @Param        body  body      SaveScheduleRequest  true  "Steps"
// @Success      200   {object}  models.Schedule
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  ValidationError
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/schedules/{name} [put]
func (h *Handler) saveSchedule(c *gin.Context) {
	var req SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	name := c.Param("name")
	s, err := h.services.Schedules.Save(c.Request.Context(), models.Schedule{Name: name, Steps: req.Steps})
	if err != nil {
		h.respondError(c, errSaveSchedule, "schedule_save_failed", err, "schedule", name)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary      Delete schedule
// @Tags         schedules
// @Produce      json
// @Param        name  path      string  true  "Schedule name"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/schedules/{name} [delete]
func (h *Handler) deleteSchedule(c *gin.Context) {
	name := c.Param("name")
	if err := h.services.Schedules.Delete(c.Request.Context(), name); err != nil {
		h.respondError(c, errDeleteSchedule, "schedule_delete_failed", err, "schedule", name)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted, "schedule": name})
}

// @Summary      Schedule curve
// @Description  Two points per step, for plotting.
// @Tags         schedules
// @Produce      json
// @Param        name  path      string  true  "Schedule name"
// @Success      200   {object}  engine.Curve
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  ValidationError
// @Router       /api/v1/schedules/{name}/curve [get]
func (h *Handler) getCurve(c *gin.Context) {
	name := c.Param("name")
	curve, err := h.services.Evaluator.Curve(c.Request.Context(), name)
	if err != nil {
		h.respondError(c, errLoadSchedule, "schedule_curve_failed", err, "schedule", name)
		return
	}
	c.JSON(http.StatusOK, curve)
}

// @Summary      Evaluate schedule
// @Description  Target temperature at 'at' (default now) for the current cycle. current_temp_c is null when no reading is available.
// @Tags         schedules
// @Produce      json
// @Param        name  path      string  true   "Schedule name"
// @Param        at    query     string  false  "Instant (RFC3339)"  example(2025-08-01T10:00:00Z)
// @Success      200   {object}  engine.Evaluation
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  ValidationError
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/schedules/{name}/evaluate [get]
func (h *Handler) evaluateSchedule(c *gin.Context) {
	var at time.Time
	if qs := c.Query("at"); qs != "" {
		t, err := time.Parse(time.RFC3339Nano, qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'at' time; use RFC3339"})
			return
		}
		at = t
	}
	name := c.Param("name")
	ev, err := h.services.Evaluator.Evaluate(c.Request.Context(), name, at)
	if err != nil {
		h.respondError(c, errEvaluate, "schedule_evaluate_failed", err, "schedule", name)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// @Summary      Controller program
// @Description  Temperature and time commands for each step, starting at program slot N.
// @Tags         schedules
// @Produce      json
// @Param        name     path      string  true   "Schedule name"
// @Param        program  query     int     false  "First program slot (0..99)"  default(0)
// @Success      200      {object}  map[string]interface{}  "schedule, commands"
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      422      {object}  ValidationError
// @Router       /api/v1/schedules/{name}/commands [get]
func (h *Handler) getCommands(c *gin.Context) {
	program := 0
	if qs := c.Query("program"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil || v < 0 || v > engine.MaxProgram {
			c.JSON(http.StatusBadRequest, gin.H{"error": "program must be an integer in 0..99"})
			return
		}
		program = v
	}
	name := c.Param("name")
	cmds, err := h.services.Evaluator.Commands(c.Request.Context(), name, program)
	if err != nil {
		h.respondError(c, errLoadSchedule, "schedule_commands_failed", err, "schedule", name)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"schedule": name,
		"commands": cmds,
	})
}
