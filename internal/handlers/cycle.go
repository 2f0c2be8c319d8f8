package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StartCycleRequest optionally names the schedule being fired.
type StartCycleRequest struct {
	Schedule string `json:"schedule,omitempty" example:"bisque"`
}

// SelectionRequest sets the schedule followed by the tracker. Empty clears it.
type SelectionRequest struct {
	Schedule string `json:"schedule" example:"bisque"`
}

// @Summary      Start cycle
// @Description  Marks now as the start of the firing. Replaces any earlier start.
// @Tags         cycle
// @Accept       json
// @Produce      json
// @Param        body  body      StartCycleRequest  false  "Optional schedule"
// @Success      200   {object}  map[string]interface{}  "status, cycle"
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/cycle/start [post]
func (h *Handler) startCycle(c *gin.Context) {
	var req StartCycleRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
			return
		}
	}
	st, err := h.services.Cycle.Start(c.Request.Context(), req.Schedule)
	if err != nil {
		h.respondError(c, errStartCycle, "cycle_start_failed", err, "schedule", req.Schedule)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusStarted, "cycle": st})
}

// @Summary      Current cycle
// @Tags         cycle
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "active, cycle"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/cycle [get]
func (h *Handler) getCycle(c *gin.Context) {
	st, ok, err := h.services.Cycle.Current(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadCycle, "cycle_get_failed", err)
		return
	}
	resp := gin.H{"active": ok}
	if ok {
		resp["cycle"] = st
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Selected schedule
// @Tags         cycle
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "selected, schedule"
// @Router       /api/v1/selection [get]
func (h *Handler) getSelection(c *gin.Context) {
	name, ok := h.services.Selection.Selected()
	c.JSON(http.StatusOK, gin.H{"selected": ok, "schedule": name})
}

// @Summary      Select schedule
// @Tags         cycle
// @Accept       json
// @Produce      json
// @Param        body  body      SelectionRequest  true  "Schedule to follow"
// @Success      200   {object}  map[string]interface{}  "selected, schedule"
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/selection [put]
func (h *Handler) putSelection(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Selection.Select(c.Request.Context(), req.Schedule); err != nil {
		h.respondError(c, errLoadSchedule, "selection_set_failed", err, "schedule", req.Schedule)
		return
	}
	h.getSelection(c)
}

// @Summary      Latest reading
// @Description  Most recent tracker evaluation of the followed schedule.
// @Tags         cycle
// @Produce      json
// @Success      200  {object}  service.Reading
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/reading [get]
func (h *Handler) getReading(c *gin.Context) {
	r, ok := h.services.Tracker.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNoReading})
		return
	}
	c.JSON(http.StatusOK, r)
}
