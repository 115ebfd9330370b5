package model

import "time"

// ExceptionReport review statuses.
const (
	ExceptionPending   = "pending"
	ExceptionProcessed = "processed"
	ExceptionResolved  = "resolved"
)

// ExceptionReport is one detected schedule/attendance discrepancy stored in
// exception_reports. Created in bulk by the detector run, mutated only by the
// reviewer workflow, and replaced wholesale by the next run for the month.
type ExceptionReport struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"                    json:"id"`
	EmployeeID uint      `gorm:"not null;index"                              json:"employee_id"`
	Date       time.Time `gorm:"type:date;not null;index"                    json:"date"`
	Issue      string    `gorm:"type:varchar(200);not null"                  json:"issue"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes      string    `gorm:"type:text"                                   json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"          json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"          json:"updated_at"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// TableName sets the table name.
func (ExceptionReport) TableName() string { return "exception_reports" }
