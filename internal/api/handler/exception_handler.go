package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rotahub/internal/dto"
	"rotahub/internal/engine"
	"rotahub/internal/service"
	"rotahub/pkg/response"
)

// ExceptionHandler serves the exception detection and review endpoints.
type ExceptionHandler struct {
	excSvc service.ExceptionService
}

// NewExceptionHandler creates an ExceptionHandler.
func NewExceptionHandler(excSvc service.ExceptionService) *ExceptionHandler {
	return &ExceptionHandler{excSvc: excSvc}
}

// Process runs the detector over a month and replaces its findings.
// POST /api/v1/exceptions/process
func (h *ExceptionHandler) Process(c *gin.Context) {
	year, month, ok := bodyPeriod(c)
	if !ok {
		return
	}

	result, err := h.excSvc.Process(c.Request.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidPeriod):
			response.BadRequest(c, 13001, "invalid year/month")
		case errors.Is(err, engine.ErrDataIntegrity):
			response.InternalError(c)
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// List returns a filtered page of exception reports.
// GET /api/v1/exceptions?year=&month=&status=&employee_id=&issue=
func (h *ExceptionHandler) List(c *gin.Context) {
	var req dto.ExceptionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}
	rows, total, err := h.excSvc.List(c.Request.Context(), &req)
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

// Get returns one exception report.
// GET /api/v1/exceptions/:id
func (h *ExceptionHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	exc, err := h.excSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExceptionNotFound) {
			response.NotFound(c, 15001, "exception not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, exc)
}

// Review moves one exception through its workflow.
// PUT /api/v1/exceptions/:id
func (h *ExceptionHandler) Review(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}
	exc, err := h.excSvc.Review(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExceptionNotFound):
			response.NotFound(c, 15001, "exception not found")
		case errors.Is(err, service.ErrInvalidTransition):
			response.Conflict(c, 15002, "status transition not allowed")
		case errors.Is(err, service.ErrUnknownReviewStep):
			response.BadRequest(c, 15003, "unknown review action")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, exc)
}
