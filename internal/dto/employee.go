package dto

import "time"

// CreateEmployeeRequest is the payload for registering an employee.
type CreateEmployeeRequest struct {
	EmpID       string `json:"emp_id" binding:"required,max=20"`
	Name        string `json:"name"   binding:"required,max=100"`
	Designation string `json:"designation" binding:"omitempty,max=100"`
	Location    string `json:"location"    binding:"omitempty,max=100"`
	Department  string `json:"department"  binding:"omitempty,max=100"`
	Grade       string `json:"grade"       binding:"omitempty,max=50"`
	Status      string `json:"status"      binding:"omitempty,oneof=active inactive"`
}

// UpdateEmployeeRequest carries a partial employee update. Nil fields
// are left untouched.
type UpdateEmployeeRequest struct {
	Name        *string `json:"name"        binding:"omitempty,max=100"`
	Designation *string `json:"designation" binding:"omitempty,max=100"`
	Location    *string `json:"location"    binding:"omitempty,max=100"`
	Department  *string `json:"department"  binding:"omitempty,max=100"`
	Grade       *string `json:"grade"       binding:"omitempty,max=50"`
	Status      *string `json:"status"      binding:"omitempty,oneof=active inactive"`
}

// EmployeeListRequest filters the employee listing.
type EmployeeListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// EmployeeResponse is the API shape of an employee.
type EmployeeResponse struct {
	ID          uint      `json:"id"`
	EmpID       string    `json:"emp_id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation,omitempty"`
	Location    string    `json:"location,omitempty"`
	Department  string    `json:"department,omitempty"`
	Grade       string    `json:"grade,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
