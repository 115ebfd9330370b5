package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rotahub/internal/dto"
	"rotahub/internal/engine"
	"rotahub/internal/service"
	"rotahub/pkg/response"
)

// maxImportSize caps attendance CSV uploads.
const maxImportSize = 5 << 20

// AttendanceHandler serves the attendance endpoints.
type AttendanceHandler struct {
	attSvc service.AttendanceService
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(attSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attSvc: attSvc}
}

// Create records one attendance mark.
// POST /api/v1/attendance
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	att, err := h.attSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, 12002, "employee not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, att)
}

// List returns attendance records, filtered by month and employee or paged
// by recency.
// GET /api/v1/attendance?year=&month=&employee_id=&page=&page_size=
func (h *AttendanceHandler) List(c *gin.Context) {
	var req dto.AttendanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}
	rows, total, err := h.attSvc.List(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidPeriod) {
			response.BadRequest(c, 13001, "invalid year/month")
			return
		}
		response.InternalError(c)
		return
	}
	response.OKPage(c, rows, total, req.GetPage(), req.GetPageSize())
}

// Import ingests a CSV attendance upload (multipart field "file").
// POST /api/v1/attendance/import
func (h *AttendanceHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 14001, "file field required")
		return
	}
	if fileHeader.Size > maxImportSize {
		response.BadRequest(c, 14002, "file too large")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c)
		return
	}
	defer file.Close()

	result, err := h.attSvc.ImportCSV(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, service.ErrEmptyImport) {
			response.BadRequest(c, 14003, "import contains no data rows")
			return
		}
		response.BadRequest(c, 14004, "malformed CSV")
		return
	}
	response.OK(c, result)
}
