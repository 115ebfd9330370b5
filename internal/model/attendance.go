package model

import "time"

// Attendance is one recorded clock event stored in attendances.
// The schema permits multiple rows per (employee, date); consumers take the
// first row in ascending-id order.
type Attendance struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"              json:"id"`
	EmployeeID uint      `gorm:"not null;index:idx_att_employee_date"  json:"employee_id"`
	Date       time.Time `gorm:"type:date;not null;index:idx_att_employee_date" json:"date"`
	Status     string    `gorm:"type:varchar(10);not null"             json:"status"` // P | A | L | E | OD
	TimeIn     *string   `gorm:"type:varchar(5)"                       json:"time_in,omitempty"`  // HH:MM
	TimeOut    *string   `gorm:"type:varchar(5)"                       json:"time_out,omitempty"` // HH:MM
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"created_at"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// TableName sets the table name.
func (Attendance) TableName() string { return "attendances" }
