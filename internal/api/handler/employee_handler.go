package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rotahub/internal/dto"
	"rotahub/internal/service"
	"rotahub/pkg/response"
)

// EmployeeHandler serves the employee roster endpoints.
type EmployeeHandler struct {
	empSvc service.EmployeeService
}

// NewEmployeeHandler creates an EmployeeHandler.
func NewEmployeeHandler(empSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{empSvc: empSvc}
}

// Create registers an employee.
// POST /api/v1/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	emp, err := h.empSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmpIDTaken) {
			response.Conflict(c, 12001, "employee id already registered")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, emp)
}

// Get returns one employee.
// GET /api/v1/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	emp, err := h.empSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, 12002, "employee not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, emp)
}

// List returns a page of employees.
// GET /api/v1/employees?status=&page=&page_size=
func (h *EmployeeHandler) List(c *gin.Context) {
	var req dto.EmployeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}
	rows, total, err := h.empSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, rows, total, req.GetPage(), req.GetPageSize())
}

// Update applies a partial update.
// PUT /api/v1/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}
	emp, err := h.empSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, 12002, "employee not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, emp)
}

// Delete removes an employee.
// DELETE /api/v1/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.empSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, 12002, "employee not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
