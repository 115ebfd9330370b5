package dto

// MonthlySummaryRow aggregates one employee's month.
type MonthlySummaryRow struct {
	EmployeeID        uint    `json:"employee_id"`
	EmpID             string  `json:"emp_id"`
	EmployeeName      string  `json:"employee_name"`
	Present           int     `json:"present"`
	Absent            int     `json:"absent"`
	Late              int     `json:"late"`
	EarlyLeave        int     `json:"early_leave"`
	OnDuty            int     `json:"on_duty"`
	OffDays           int     `json:"off_days"`
	LeaveDays         int     `json:"leave_days"`
	WorkedHours       string  `json:"worked_hours"`
	AttendancePercent float64 `json:"attendance_percent"`
}

// MonthlySummaryResponse is the monthly report for all employees.
type MonthlySummaryResponse struct {
	Period string              `json:"period"`
	Rows   []MonthlySummaryRow `json:"rows"`
}
