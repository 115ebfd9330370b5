package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rotahub/internal/dto"
	"rotahub/internal/model"
	"rotahub/internal/repository"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmpIDTaken       = errors.New("employee id already registered")
)

// EmployeeService manages the HR roster.
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*model.Employee, error)
	Get(ctx context.Context, id uint) (*model.Employee, error)
	List(ctx context.Context, req *dto.EmployeeListRequest) ([]model.Employee, int64, error)
	Update(ctx context.Context, id uint, req *dto.UpdateEmployeeRequest) (*model.Employee, error)
	Delete(ctx context.Context, id uint) error
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService builds the employee service.
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*model.Employee, error) {
	if _, err := s.repo.Employee.GetByEmpID(ctx, req.EmpID); err == nil {
		return nil, ErrEmpIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	emp := &model.Employee{
		EmpID:       req.EmpID,
		Name:        req.Name,
		Designation: req.Designation,
		Location:    req.Location,
		Department:  req.Department,
		Grade:       req.Grade,
		Status:      req.Status,
	}
	if emp.Status == "" {
		emp.Status = model.EmployeeActive
	}
	if err := s.repo.Employee.Create(ctx, emp); err != nil {
		return nil, err
	}
	s.logger.Info("employee created",
		zap.Uint("id", emp.ID), zap.String("emp_id", emp.EmpID))
	return emp, nil
}

func (s *employeeService) Get(ctx context.Context, id uint) (*model.Employee, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployeeNotFound
	}
	return emp, err
}

func (s *employeeService) List(ctx context.Context, req *dto.EmployeeListRequest) ([]model.Employee, int64, error) {
	return s.repo.Employee.List(ctx, req.Status, req.Offset(), req.GetPageSize())
}

func (s *employeeService) Update(ctx context.Context, id uint, req *dto.UpdateEmployeeRequest) (*model.Employee, error) {
	emp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Designation != nil {
		emp.Designation = *req.Designation
	}
	if req.Location != nil {
		emp.Location = *req.Location
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Grade != nil {
		emp.Grade = *req.Grade
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}
	if err := s.repo.Employee.Update(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Employee.Delete(ctx, id)
}
