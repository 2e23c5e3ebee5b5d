package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitrinepdv/vitrine/internal/server/http/dto"
)

// ReportHandler serves the admin dashboards.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// Dashboard handles GET /api/admin/reports/dashboard.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	from, to, ok := parsePeriod(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	stats, err := h.facade.Dashboard(c.Request.Context(), from, to)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.FromDashboard(stats))
}

// Profit handles GET /api/admin/reports/profit.
func (h *ReportHandler) Profit(c *gin.Context) {
	from, to, ok := parsePeriod(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	report, err := h.facade.Profit(c.Request.Context(), from, to)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.FromProfit(report))
}

func parsePeriod(c *gin.Context) (*time.Time, *time.Time, bool) {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, nil, false
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, nil, false
		}
		to = &parsed
	}
	return from, to, true
}
