package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rotahub/internal/engine"
	"rotahub/internal/service"
	"rotahub/pkg/response"
)

// ReportHandler serves the monthly summary report.
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// MonthlySummary returns each employee's aggregated month.
// GET /api/v1/reports/summary?year=&month=
func (h *ReportHandler) MonthlySummary(c *gin.Context) {
	year, month := queryPeriod(c)
	result, err := h.reportSvc.MonthlySummary(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidPeriod) {
			response.BadRequest(c, 13001, "invalid year/month")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
