package repository

import (
	"context"

	"gorm.io/gorm"

	"rotahub/internal/model"
)

// ShiftTypeRepository is the shift catalog data-access interface.
type ShiftTypeRepository interface {
	Create(ctx context.Context, st *model.ShiftType) error
	GetByCode(ctx context.Context, code string) (*model.ShiftType, error)
	List(ctx context.Context) ([]model.ShiftType, error)
	Count(ctx context.Context) (int64, error)
}

type shiftTypeRepo struct {
	db *gorm.DB
}

func NewShiftTypeRepo(db *gorm.DB) ShiftTypeRepository {
	return &shiftTypeRepo{db: db}
}

func (r *shiftTypeRepo) Create(ctx context.Context, st *model.ShiftType) error {
	return r.db.WithContext(ctx).Create(st).Error
}

func (r *shiftTypeRepo) GetByCode(ctx context.Context, code string) (*model.ShiftType, error) {
	var st model.ShiftType
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *shiftTypeRepo) List(ctx context.Context) ([]model.ShiftType, error) {
	var sts []model.ShiftType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&sts).Error
	return sts, err
}

func (r *shiftTypeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ShiftType{}).Count(&n).Error
	return n, err
}
