package dto

// CreateAttendanceRequest records one attendance mark.
type CreateAttendanceRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	Date       string `json:"date"        binding:"required,datetime=2006-01-02"`
	Status     string `json:"status"      binding:"required,oneof=P A L E OD"`
	TimeIn     string `json:"time_in"     binding:"omitempty,datetime=15:04"`
	TimeOut    string `json:"time_out"    binding:"omitempty,datetime=15:04"`
}

// AttendanceListRequest filters the attendance listing.
type AttendanceListRequest struct {
	PaginationRequest
	PeriodRequest
	EmployeeID uint `form:"employee_id"`
}

// AttendanceResponse is the API shape of an attendance record.
type AttendanceResponse struct {
	ID           uint   `json:"id"`
	EmployeeID   uint   `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	TimeIn       string `json:"time_in,omitempty"`
	TimeOut      string `json:"time_out,omitempty"`
	Worked       string `json:"worked,omitempty"`
}

// ImportResult summarizes a CSV attendance upload.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
