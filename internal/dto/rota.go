package dto

// GenerateRotaResponse summarizes a rota generation run.
type GenerateRotaResponse struct {
	Period    string `json:"period"`
	Policy    string `json:"policy"`
	Employees int    `json:"employees"`
	Rows      int    `json:"rows"`
}

// RotaEntryResponse is one cell of the monthly rota.
type RotaEntryResponse struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	EmployeeID   uint   `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	EmpID        string `json:"emp_id"`
	ShiftCode    string `json:"shift_code"`
	ShiftName    string `json:"shift_name"`
	StartTime    string `json:"start_time,omitempty"`
}
