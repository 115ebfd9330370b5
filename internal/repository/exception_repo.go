package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rotahub/internal/model"
)

// ExceptionFilter narrows exception listings.
type ExceptionFilter struct {
	Status     string
	EmployeeID uint
	Issue      string // substring match
}

// ExceptionRepository is the exception report data-access interface.
type ExceptionRepository interface {
	// ReplaceRange deletes every exception dated in [start, end] and inserts
	// the given rows in one transaction (same atomic-replace contract as the
	// rota).
	ReplaceRange(ctx context.Context, start, end time.Time, rows []model.ExceptionReport) error
	GetByID(ctx context.Context, id uint) (*model.ExceptionReport, error)
	List(ctx context.Context, start, end time.Time, filter ExceptionFilter, offset, limit int) ([]model.ExceptionReport, int64, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]model.ExceptionReport, error)
	Update(ctx context.Context, exc *model.ExceptionReport) error
}

type exceptionRepo struct {
	db *gorm.DB
}

func NewExceptionRepo(db *gorm.DB) ExceptionRepository {
	return &exceptionRepo{db: db}
}

func (r *exceptionRepo) ReplaceRange(ctx context.Context, start, end time.Time, rows []model.ExceptionReport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date >= ? AND date <= ?", start, end).
			Delete(&model.ExceptionReport{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(&rows, 500).Error
	})
}

func (r *exceptionRepo) GetByID(ctx context.Context, id uint) (*model.ExceptionReport, error) {
	var exc model.ExceptionReport
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("id = ?", id).
		First(&exc).Error
	if err != nil {
		return nil, err
	}
	return &exc, nil
}

func (r *exceptionRepo) List(ctx context.Context, start, end time.Time, filter ExceptionFilter, offset, limit int) ([]model.ExceptionReport, int64, error) {
	var rows []model.ExceptionReport
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ExceptionReport{}).
		Where("date >= ? AND date <= ?", start, end)
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != 0 {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Issue != "" {
		db = db.Where("issue LIKE ?", "%"+filter.Issue+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Employee").
		Order("date DESC, id ASC").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *exceptionRepo) ListByRange(ctx context.Context, start, end time.Time) ([]model.ExceptionReport, error) {
	var rows []model.ExceptionReport
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *exceptionRepo) Update(ctx context.Context, exc *model.ExceptionReport) error {
	return r.db.WithContext(ctx).Save(exc).Error
}
