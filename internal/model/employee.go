package model

import "time"

// Employee statuses.
const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
)

// Employee is one HR record stored in employees.
// Only active employees participate in rota generation.
type Employee struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"              json:"id"`
	EmpID       string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"emp_id"`
	Name        string    `gorm:"type:varchar(100);not null"            json:"name"`
	Designation string    `gorm:"type:varchar(100)"                     json:"designation,omitempty"`
	Location    string    `gorm:"type:varchar(100)"                     json:"location,omitempty"`
	Department  string    `gorm:"type:varchar(100)"                     json:"department,omitempty"`
	Grade       string    `gorm:"type:varchar(50)"                      json:"grade,omitempty"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"updated_at"`
}

// TableName sets the table name.
func (Employee) TableName() string { return "employees" }
