package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	Employee   EmployeeRepository
	ShiftType  ShiftTypeRepository
	Rota       RotaRepository
	Attendance AttendanceRepository
	Exception  ExceptionRepository
	AdminUser  AdminUserRepository
}

// NewRepository wires the gorm implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Employee:   NewEmployeeRepo(db),
		ShiftType:  NewShiftTypeRepo(db),
		Rota:       NewRotaRepo(db),
		Attendance: NewAttendanceRepo(db),
		Exception:  NewExceptionRepo(db),
		AdminUser:  NewAdminUserRepo(db),
	}
}
