package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rotahub/internal/model"
)

// RotaRepository is the shift rota data-access interface.
type RotaRepository interface {
	// ReplaceRange deletes every rota row dated in [start, end] and inserts
	// the given rows in the same transaction, so no partial state is ever
	// observable.
	ReplaceRange(ctx context.Context, start, end time.Time, rows []model.ShiftRota) error
	ListByRange(ctx context.Context, start, end time.Time) ([]model.ShiftRota, error)
	ListByEmployeeRange(ctx context.Context, employeeID uint, start, end time.Time) ([]model.ShiftRota, error)
}

type rotaRepo struct {
	db *gorm.DB
}

func NewRotaRepo(db *gorm.DB) RotaRepository {
	return &rotaRepo{db: db}
}

func (r *rotaRepo) ReplaceRange(ctx context.Context, start, end time.Time, rows []model.ShiftRota) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date >= ? AND date <= ?", start, end).
			Delete(&model.ShiftRota{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(&rows, 500).Error
	})
}

func (r *rotaRepo) ListByRange(ctx context.Context, start, end time.Time) ([]model.ShiftRota, error) {
	var rows []model.ShiftRota
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("ShiftType").
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, employee_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *rotaRepo) ListByEmployeeRange(ctx context.Context, employeeID uint, start, end time.Time) ([]model.ShiftRota, error) {
	var rows []model.ShiftRota
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("ShiftType").
		Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, start, end).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
