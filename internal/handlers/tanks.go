package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"aqualog/internal/models"
	"aqualog/internal/repository"
	"aqualog/internal/service"
	"aqualog/internal/waterquality"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusDeleted = "deleted"

	errTankID          = "invalid tank id"
	errCreateTank      = "failed to create tank"
	errListTanks       = "failed to load tanks"
	errGetTank         = "failed to load tank"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// statusForError maps service-layer errors onto HTTP status codes: not-found
// stays 404, every validation failure is the caller's fault, the rest is ours.
func statusForError(err error) int {
	switch {
	case errors.Is(err, repository.ErrTankNotFound),
		errors.Is(err, service.ErrNoReadings):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmptyTankName),
		errors.Is(err, service.ErrInvalidVolume),
		errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, service.ErrNotOverridable),
		errors.Is(err, service.ErrInvalidIndicator),
		errors.Is(err, service.ErrVolumeRequired),
		errors.Is(err, waterquality.ErrUnknownParameter),
		errors.Is(err, waterquality.ErrImplausibleReading),
		errors.Is(err, waterquality.ErrInvalidScheduleHour),
		errors.Is(err, waterquality.ErrUnknownProduct),
		errors.Is(err, waterquality.ErrUnknownUnit):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// serviceError answers with the mapped status; 4xx responses carry the
// service error text, 5xx hide it behind userMsg.
func (h *Handler) serviceError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	code := statusForError(err)
	if code < http.StatusInternalServerError {
		c.JSON(code, gin.H{"error": err.Error()})
		return
	}
	h.logAndJSONError(c, code, userMsg, logKey, err, kv...)
}

// tankIDParam parses the :id path segment and writes a 400 on failure.
// Returns ok=false if the request was already handled.
func (h *Handler) tankIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errTankID})
		return 0, false
	}
	return id, true
}

// CreateTankRequest is the payload to register a tank.
type CreateTankRequest struct {
	// Display name, required
	Name string `json:"name" example:"Living room 60P"`
	// Water volume in litres, optional but required later for dosing
	VolumeL *float64 `json:"volume_l,omitempty" example:"64"`
}

// SetRangeRequest replaces the safe band for one parameter.
type SetRangeRequest struct {
	Parameter string  `json:"parameter" example:"nitrate"`
	Low       float64 `json:"low" example:"10"`
	High      float64 `json:"high" example:"30"`
}

// SetScheduleRequest sets the tank's CO₂ injection window (hours 0–23).
type SetScheduleRequest struct {
	OnHour  int `json:"on_hour" example:"9"`
	OffHour int `json:"off_hour" example:"17"`
}

type volumeRequest struct {
	VolumeL float64 `json:"volume_l" binding:"required"`
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

// @Summary      Create tank
// @Tags         tanks
// @Accept       json
// @Produce      json
// @Param        body  body   CreateTankRequest  true  "Tank payload"
// @Success      200   {object}  models.Tank
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/tanks [post]
// @Security     BearerAuth
func (h *Handler) createTank(c *gin.Context) {
	var req CreateTankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	tank, err := h.services.Tanks.Create(c.Request.Context(), service.TankParams{
		Name:    req.Name,
		VolumeL: req.VolumeL,
	})
	if err != nil {
		h.serviceError(c, errCreateTank, "tank_create_failed", err, "name", req.Name)
		return
	}
	c.JSON(http.StatusOK, tank)
}

// @Summary      List tanks
// @Tags         tanks
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, tanks"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/tanks [get]
// @Security     BearerAuth
func (h *Handler) listTanks(c *gin.Context) {
	tanks, err := h.services.Tanks.List(c.Request.Context())
	if err != nil {
		h.serviceError(c, errListTanks, "tank_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(tanks),
		"tanks": tanks,
	})
}

// @Summary      Get tank
// @Tags         tanks
// @Produce      json
// @Param        id   path      int  true  "Tank ID"
// @Success      200  {object}  models.Tank
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/tanks/{id} [get]
// @Security     BearerAuth
func (h *Handler) getTank(c *gin.Context) {
	id, ok := h.tankIDParam(c)
	if !ok {
		return
	}
	tank, err := h.services.Tanks.Get(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, errGetTank, "tank_get_failed", err, "tank_id", id)
		return
	}
	c.JSON(http.StatusOK, tank)
}

// @Summary      Update tank volume
// @Tags         tanks
// @Accept       json
// @Produce      json
// @Param        id    path   int            true  "Tank ID"
// @Param        body  body   volumeRequest  true  "New volume in litres"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/tanks/{id}/volume [put]
// @Security     BearerAuth
func (h *Handler) updateVolume(c *gin.Context) {
	id, ok := h.tankIDParam(c)
	if !ok {
		return
	}
	var req volumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Tanks.UpdateVolume(c.Request.Context(), id, req.VolumeL); err != nil {
		h.serviceError(c, "failed to update volume", "tank_volume_update_failed", err, "tank_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      List custom safe ranges
// @Tags         ranges
// @Produce      json
// @Param        id   path      int  true  "Tank ID"
// @Success      200  {object}  map[string]interface{}  "count, ranges"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/tanks/{id}/ranges [get]
// @Security     BearerAuth
func (h *Handler) getRanges(c *gin.Context) {
	id, ok := h.tankIDParam(c)
	if !ok {
		return
	}
	ranges, err := h.services.Tanks.Ranges(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, "failed to load ranges", "range_list_failed", err, "tank_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(ranges),
		"ranges": ranges,
	})
}

// @Summary      Set custom safe range
// @Description  Replaces the default safe band for one parameter on this tank. High must be strictly greater than low.
// @Tags         ranges
// @Accept       json
// @Produce      json
// @Param        id    path   int              true  "Tank ID"
// @Param        body  body   SetRangeRequest  true  "Range payload"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/tanks/{id}/ranges [put]
// @Security     BearerAuth
func (h *Handler) putRange(c *gin.Context) {
	id, ok := h.tankIDParam(c)
	if !ok {
		return
	}
	var req SetRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	err := h.services.Tanks.SetRange(c.Request.Context(), models.SafeRangeOverride{
		TankID:    id,
		Parameter: req.Parameter,
		Low:       req.Low,
		High:      req.High,
	})
	if err != nil {
		h.serviceError(c, "failed to set range", "range_set_failed", err, "tank_id", id, "parameter", req.Parameter)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Delete custom safe range
// @Tags         ranges
// @Produce      json
// @Param        id         path   int     true  "Tank ID"
// @Param        parameter  path   string  true  "Parameter name"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/tanks/{id}/ranges/{parameter} [delete]
// @Security     BearerAuth
func (h *Handler) deleteRange(c *gin.Context) {
	id, ok := h.tankIDParam(c)
	if !ok {
		return
	}
	param := c.Param("parameter")
	if err := h.services.Tanks.DeleteRange(c.Request.Context(), id, param); err != nil {
		h.serviceError(c, "failed to delete range", "range_delete_failed", err, "tank_id", id, "parameter", param)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted})
}

// @Summary      Set CO₂ schedule
// @Description  Overrides the global CO₂ injection window for this tank. A window that wraps midnight (e.g. 22→6) is valid.
// @Tags         tanks
// @Accept       json
// @Produce      json
// @Param        id    path   int                 true  "Tank ID"
// @Param        body  body   SetScheduleRequest  true  "Schedule payload"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/tanks/{id}/schedule [put]
// @Security     BearerAuth
func (h *Handler) putSchedule(c *gin.Context) {
	id, ok := h.tankIDParam(c)
	if !ok {
		return
	}
	var req SetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	schedule := waterquality.Co2Schedule{OnHour: req.OnHour, OffHour: req.OffHour}
	if err := h.services.Tanks.SetCo2Schedule(c.Request.Context(), id, schedule); err != nil {
		h.serviceError(c, "failed to set schedule", "schedule_set_failed", err, "tank_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Clear CO₂ schedule
// @Description  Removes the tank override; evaluation falls back to the global window.
// @Tags         tanks
// @Produce      json
// @Param        id   path      int  true  "Tank ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/tanks/{id}/schedule [delete]
// @Security     BearerAuth
func (h *Handler) deleteSchedule(c *gin.Context) {
	id, ok := h.tankIDParam(c)
	if !ok {
		return
	}
	if err := h.services.Tanks.ClearCo2Schedule(c.Request.Context(), id); err != nil {
		h.serviceError(c, "failed to clear schedule", "schedule_clear_failed", err, "tank_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted})
}
