package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"aqualog/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// RecordReadingRequest is one water test. Omitted parameters were not
// measured. taken_at defaults to now (UTC) when absent.
type RecordReadingRequest struct {
	TakenAt      *time.Time `json:"taken_at,omitempty"`
	PH           *float64   `json:"ph,omitempty" example:"7.2"`
	Ammonia      *float64   `json:"ammonia,omitempty" example:"0.25"`
	Nitrite      *float64   `json:"nitrite,omitempty" example:"0"`
	Nitrate      *float64   `json:"nitrate,omitempty" example:"20"`
	Temperature  *float64   `json:"temperature,omitempty" example:"25"`
	KH           *float64   `json:"kh,omitempty" example:"5"`
	GH           *float64   `json:"gh,omitempty" example:"8"`
	CO2Indicator string     `json:"co2_indicator,omitempty" example:"Green"`
	Notes        string     `json:"notes,omitempty" example:"weekly check"`
}

// @Summary      Record water test
// @Description  Stores one measurement event. Values outside plausible physical limits are rejected; unsafe-but-plausible values are stored and judged at evaluation time.
// @Tags         readings
// @Accept       json
// @Produce      json
// @Param        id    path   int                   true  "Tank ID"
// @Param        body  body   RecordReadingRequest  true  "Test payload"
// @Success      200   {object}  models.WaterTest
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/tanks/{id}/readings [post]
// @Security     BearerAuth
func (h *Handler) postReading(c *gin.Context) {
	id, ok := h.tankIDParam(c)
	if !ok {
		return
	}
	var req RecordReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	wt := models.WaterTest{
		TankID:       id,
		PH:           req.PH,
		Ammonia:      req.Ammonia,
		Nitrite:      req.Nitrite,
		Nitrate:      req.Nitrate,
		Temperature:  req.Temperature,
		KH:           req.KH,
		GH:           req.GH,
		CO2Indicator: req.CO2Indicator,
		Notes:        req.Notes,
	}
	if req.TakenAt != nil {
		wt.TakenAt = *req.TakenAt
	}
	stored, err := h.services.Readings.Record(c.Request.Context(), wt)
	if err != nil {
		h.serviceError(c, "failed to record water test", "reading_record_failed", err, "tank_id", id)
		return
	}
	c.JSON(http.StatusOK, stored)
}

// @Summary      List water tests
// @Description  Filter tests by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). If 'to' is date-only, it is treated as end-of-day inclusive (23:59:59.999999999Z).
// @Tags         readings
// @Produce      json
// @Param        id    path    int     true   "Tank ID"
// @Param        from  query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2026-08-01)
// @Param        to    query   string  false  "End of range. Date-only treated as end of day."  example(2026-08-31)
// @Success      200   {object}  map[string]interface{}  "count, tests"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/tanks/{id}/readings [get]
// @Security     BearerAuth
func (h *Handler) listReadings(c *gin.Context) {
	id, ok := h.tankIDParam(c)
	if !ok {
		return
	}
	var (
		from time.Time
		to   time.Time
		err  error
	)
	// Parse 'from' (optional)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	// Parse 'to' (optional). If only a date is provided, make it end-of-day inclusive.
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must be <= 'to'"})
		return
	}
	tests, err := h.services.Readings.List(c.Request.Context(), id, from, to)
	if err != nil {
		h.serviceError(c, "failed to load water tests", "reading_list_failed", err, "tank_id", id, "from", from, "to", to)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(tests),
		"tests": tests,
	})
}

func parseQueryTime(s string) (time.Time, error) {
	// Try multiple accepted formats, normalizing to UTC.
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: RFC3339, %q, %q",
		s, layoutDateTime, layoutDate,
	)
}
