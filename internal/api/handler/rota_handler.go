package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rotahub/internal/dto"
	"rotahub/internal/engine"
	"rotahub/internal/service"
	"rotahub/pkg/response"
)

// RotaHandler serves the shift rota endpoints.
type RotaHandler struct {
	rotaSvc service.RotaService
}

// NewRotaHandler creates a RotaHandler.
func NewRotaHandler(rotaSvc service.RotaService) *RotaHandler {
	return &RotaHandler{rotaSvc: rotaSvc}
}

// Generate builds the rota for a month. An empty body targets the current
// month.
// POST /api/v1/rota/generate
func (h *RotaHandler) Generate(c *gin.Context) {
	year, month, ok := bodyPeriod(c)
	if !ok {
		return
	}

	result, err := h.rotaSvc.Generate(c.Request.Context(), year, month)
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

// List returns the month's rota.
// GET /api/v1/rota?year=&month=
func (h *RotaHandler) List(c *gin.Context) {
	year, month := queryPeriod(c)
	rows, err := h.rotaSvc.ListMonth(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidPeriod) {
			response.BadRequest(c, 13001, "invalid year/month")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, rows)
}

// ListEmployee returns one employee's month.
// GET /api/v1/rota/employees/:id?year=&month=
func (h *RotaHandler) ListEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	year, month := queryPeriod(c)
	rows, err := h.rotaSvc.ListEmployeeMonth(c.Request.Context(), id, year, month)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidPeriod):
			response.BadRequest(c, 13001, "invalid year/month")
		case errors.Is(err, service.ErrEmployeeNotFound):
			response.NotFound(c, 12002, "employee not found")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, rows)
}

// bodyPeriod binds an optional JSON period payload, defaulting both fields
// to the current month when the body is empty.
func bodyPeriod(c *gin.Context) (int, int, bool) {
	var req dto.PeriodRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, 10001, "validation failed")
			return 0, 0, false
		}
	}
	if req.Year == 0 && req.Month == 0 {
		y, m := queryPeriod(c)
		return y, m, true
	}
	return req.Year, req.Month, true
}
