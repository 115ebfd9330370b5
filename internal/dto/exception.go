package dto

import "time"

// ExceptionListRequest filters the exception listing.
type ExceptionListRequest struct {
	PaginationRequest
	PeriodRequest
	Status     string `form:"status" binding:"omitempty,oneof=pending processed resolved"`
	EmployeeID uint   `form:"employee_id"`
	Issue      string `form:"issue" binding:"omitempty,max=64"`
}

// UpdateExceptionRequest moves an exception through its review states.
type UpdateExceptionRequest struct {
	Action string `json:"action" binding:"required,oneof=process resolve reopen"`
	Notes  string `json:"notes"  binding:"omitempty,max=512"`
}

// ExceptionResponse is the API shape of an exception report.
type ExceptionResponse struct {
	ID           uint      `json:"id"`
	EmployeeID   uint      `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	EmpID        string    `json:"emp_id,omitempty"`
	Date         string    `json:"date"`
	Issue        string    `json:"issue"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProcessExceptionsResponse summarizes a detection run.
type ProcessExceptionsResponse struct {
	Period              string `json:"period"`
	RotaRows            int    `json:"rota_rows"`
	AttendanceRows      int    `json:"attendance_rows"`
	DuplicateAttendance int    `json:"duplicate_attendance"`
	Exceptions          int    `json:"exceptions"`
}
