package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rotahub/internal/model"
)

// AttendanceRepository is the attendance log data-access interface.
type AttendanceRepository interface {
	Create(ctx context.Context, att *model.Attendance) error
	BatchCreate(ctx context.Context, rows []model.Attendance) error
	// ListByRange returns attendance rows ordered by date, employee and then
	// ascending id, so the first row per (employee, date) group is the
	// stable tie-break winner where duplicates exist.
	ListByRange(ctx context.Context, start, end time.Time) ([]model.Attendance, error)
	ListByEmployeeRange(ctx context.Context, employeeID uint, start, end time.Time) ([]model.Attendance, error)
	ListRecent(ctx context.Context, offset, limit int) ([]model.Attendance, int64, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepo) BatchCreate(ctx context.Context, rows []model.Attendance) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&rows, 500).Error
}

func (r *attendanceRepo) ListByRange(ctx context.Context, start, end time.Time) ([]model.Attendance, error) {
	var rows []model.Attendance
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, employee_id ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *attendanceRepo) ListByEmployeeRange(ctx context.Context, employeeID uint, start, end time.Time) ([]model.Attendance, error) {
	var rows []model.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, start, end).
		Order("date ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *attendanceRepo) ListRecent(ctx context.Context, offset, limit int) ([]model.Attendance, int64, error) {
	var rows []model.Attendance
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Attendance{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	return rows, total, err
}
