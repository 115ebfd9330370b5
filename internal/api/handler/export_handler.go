package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"rotahub/internal/engine"
	"rotahub/internal/service"
	"rotahub/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the download endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Rota downloads the month's rota workbook.
// GET /api/v1/export/rota?year=&month=
func (h *ExportHandler) Rota(c *gin.Context) {
	year, month := queryPeriod(c)
	buf, filename, err := h.exportSvc.RotaWorkbook(c.Request.Context(), year, month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	writeWorkbookResponse(c, buf, filename)
}

// Exceptions downloads the month's exception workbook.
// GET /api/v1/export/exceptions?year=&month=
func (h *ExportHandler) Exceptions(c *gin.Context) {
	year, month := queryPeriod(c)
	buf, filename, err := h.exportSvc.ExceptionWorkbook(c.Request.Context(), year, month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	writeWorkbookResponse(c, buf, filename)
}

// Attendance downloads the month's attendance workbook.
// GET /api/v1/export/attendance?year=&month=
func (h *ExportHandler) Attendance(c *gin.Context) {
	year, month := queryPeriod(c)
	buf, filename, err := h.exportSvc.AttendanceWorkbook(c.Request.Context(), year, month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	writeWorkbookResponse(c, buf, filename)
}

// Employees downloads the roster workbook.
// GET /api/v1/export/employees
func (h *ExportHandler) Employees(c *gin.Context) {
	buf, filename, err := h.exportSvc.EmployeeWorkbook(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	writeWorkbookResponse(c, buf, filename)
}

// Summary downloads the monthly summary workbook.
// GET /api/v1/export/summary?year=&month=
func (h *ExportHandler) Summary(c *gin.Context) {
	year, month := queryPeriod(c)
	buf, filename, err := h.exportSvc.SummaryWorkbook(c.Request.Context(), year, month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	writeWorkbookResponse(c, buf, filename)
}

// RotaICS serves one employee's month as an iCalendar feed.
// GET /api/v1/export/rota/employees/:id/ics?year=&month=
func (h *ExportHandler) RotaICS(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	year, month := queryPeriod(c)
	content, filename, err := h.exportSvc.EmployeeRotaICS(c.Request.Context(), id, year, month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(content))
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidPeriod):
		response.BadRequest(c, 13001, "invalid year/month")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12002, "employee not found")
	case errors.Is(err, service.ErrExportNoRota):
		response.NotFound(c, 16001, "no rota generated for the month")
	case errors.Is(err, service.ErrExportNoData):
		response.NotFound(c, 16002, "nothing to export for the month")
	default:
		response.InternalError(c)
	}
}

func writeWorkbookResponse(c *gin.Context, buf *bytes.Buffer, filename string) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
