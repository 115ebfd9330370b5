package model

import "time"

// ShiftType is one catalog entry (M, E, N, G, Off, Leave) stored in shift_types.
type ShiftType struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"              json:"id"`
	Code        string `gorm:"type:varchar(10);not null;uniqueIndex" json:"code"`
	Description string `gorm:"type:varchar(100)"                     json:"description,omitempty"`
}

// TableName sets the table name.
func (ShiftType) TableName() string { return "shift_types" }

// ShiftRota assigns one shift to one employee on one date, stored in shift_rotas.
// At most one row per (employee, date) survives a generation pass; the whole
// month is replaced atomically.
type ShiftRota struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"                json:"id"`
	EmployeeID  uint      `gorm:"not null;index:idx_rota_employee_date"   json:"employee_id"`
	Date        time.Time `gorm:"type:date;not null;index:idx_rota_employee_date" json:"date"`
	ShiftTypeID uint      `gorm:"not null"                                json:"shift_type_id"`

	Employee  *Employee  `gorm:"foreignKey:EmployeeID"  json:"employee,omitempty"`
	ShiftType *ShiftType `gorm:"foreignKey:ShiftTypeID" json:"shift_type,omitempty"`
}

// TableName sets the table name.
func (ShiftRota) TableName() string { return "shift_rotas" }
