package handlers

import (
	"net/http"
	"strconv"

	"aqualog/internal/waterquality"

	"github.com/gin-gonic/gin"
)

// DoseRequestBody asks for a remediation dose for this tank.
type DoseRequestBody struct {
	// Product to dose. Allowed: alkaline_buffer, remineralizer, nitrifying_culture
	Product string `json:"product" example:"alkaline_buffer"`
	// Desired increase in degrees (kH for buffer, gH for remineralizer); ignored for nitrifying_culture
	Delta float64 `json:"delta,omitempty" example:"2"`
	// Whether the tank is newly set up (nitrifying_culture only)
	NewSystem bool `json:"new_system,omitempty"`
}

// @Summary      Evaluate latest water test
// @Description  Runs every measured parameter of the newest test through the safe-range rules, including ammonia toxicity and the CO₂ schedule.
// @Tags         evaluation
// @Produce      json
// @Param        id   path      int  true  "Tank ID"
// @Success      200  {object}  service.EvaluationReport
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/tanks/{id}/evaluation [get]
// @Security     BearerAuth
func (h *Handler) getEvaluation(c *gin.Context) {
	id, ok := h.tankIDParam(c)
	if !ok {
		return
	}
	report, err := h.services.Evaluation.EvaluateLatest(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, "failed to evaluate tank", "evaluation_failed", err, "tank_id", id)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary      Nitrogen cycle status
// @Description  Inspects the most recent tests: the tank counts as cycled when ammonia and nitrite stay within their safe bands across the window and nitrate is present in the newest test.
// @Tags         evaluation
// @Produce      json
// @Param        id   path      int  true  "Tank ID"
// @Success      200  {object}  waterquality.CycleStatus
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/tanks/{id}/cycle [get]
// @Security     BearerAuth
func (h *Handler) getCycle(c *gin.Context) {
	id, ok := h.tankIDParam(c)
	if !ok {
		return
	}
	status, err := h.services.Cycle.Status(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, "failed to assess cycle", "cycle_status_failed", err, "tank_id", id)
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary      Recommend dose
// @Description  Computes product quantity from the tank's stored volume. Fails if the tank has no volume on record.
// @Tags         dosing
// @Accept       json
// @Produce      json
// @Param        id    path   int              true  "Tank ID"
// @Param        body  body   DoseRequestBody  true  "Dose payload"
// @Success      200   {object}  waterquality.DoseRecommendation
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/tanks/{id}/dosing [post]
// @Security     BearerAuth
func (h *Handler) postDosing(c *gin.Context) {
	id, ok := h.tankIDParam(c)
	if !ok {
		return
	}
	var req DoseRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	rec, err := h.services.Dosing.Recommend(c.Request.Context(), id, waterquality.DoseRequest{
		Product:   waterquality.Product(req.Product),
		Delta:     req.Delta,
		NewSystem: req.NewSystem,
	})
	if err != nil {
		h.serviceError(c, "failed to compute dose", "dosing_failed", err, "tank_id", id, "product", req.Product)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Water change percentage
// @Description  Percentage of water to replace to dilute a parameter from 'current' down to 'target'.
// @Tags         dosing
// @Produce      json
// @Param        current  query   number  true  "Current concentration"
// @Param        target   query   number  true  "Target concentration"
// @Success      200  {object}  map[string]interface{}  "percent"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/calc/water-change [get]
// @Security     BearerAuth
func (h *Handler) getWaterChange(c *gin.Context) {
	current, err1 := strconv.ParseFloat(c.Query("current"), 64)
	target, err2 := strconv.ParseFloat(c.Query("target"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'current' and 'target' must be numbers"})
		return
	}
	percent := h.services.Dosing.WaterChangePercent(current, target)
	c.JSON(http.StatusOK, gin.H{
		"current": current,
		"target":  target,
		"percent": percent,
	})
}

// @Summary      Tank volume from dimensions
// @Tags         dosing
// @Produce      json
// @Param        length  query   number  true   "Length"
// @Param        width   query   number  true   "Width"
// @Param        height  query   number  true   "Height"
// @Param        unit    query   string  false  "Dimension unit"  Enums(cm,inches)  default(cm)
// @Success      200  {object}  map[string]interface{}  "litres, gallons"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/calc/volume [get]
// @Security     BearerAuth
func (h *Handler) getTankVolume(c *gin.Context) {
	length, err1 := strconv.ParseFloat(c.Query("length"), 64)
	width, err2 := strconv.ParseFloat(c.Query("width"), 64)
	height, err3 := strconv.ParseFloat(c.Query("height"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'length', 'width' and 'height' must be numbers"})
		return
	}
	unit := waterquality.DimensionUnit(c.DefaultQuery("unit", string(waterquality.UnitCentimeters)))
	litres, gallons, err := h.services.Dosing.TankVolume(length, width, height, unit)
	if err != nil {
		h.serviceError(c, "failed to compute volume", "volume_calc_failed", err, "unit", unit)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"litres":  litres,
		"gallons": gallons,
	})
}
