package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rotahub/config"
	"rotahub/internal/dto"
	"rotahub/internal/engine"
	"rotahub/internal/model"
	"rotahub/internal/repository"
)

// RotaService generates and serves the monthly shift rota.
type RotaService interface {
	Generate(ctx context.Context, year, month int) (*dto.GenerateRotaResponse, error)
	ListMonth(ctx context.Context, year, month int) ([]dto.RotaEntryResponse, error)
	ListEmployeeMonth(ctx context.Context, employeeID uint, year, month int) ([]dto.RotaEntryResponse, error)
}

type rotaService struct {
	repo   *repository.Repository
	cfg    *config.RotaConfig
	logger *zap.Logger
}

// NewRotaService builds the rota service.
func NewRotaService(repo *repository.Repository, cfg *config.RotaConfig, logger *zap.Logger) RotaService {
	return &rotaService{repo: repo, cfg: cfg, logger: logger}
}

// Generate builds the full month for every active employee and replaces any
// existing rows for that month in one transaction, so a re-run lands on the
// regenerated schedule rather than accumulating duplicates.
func (s *rotaService) Generate(ctx context.Context, year, month int) (*dto.GenerateRotaResponse, error) {
	period, err := engine.NewPeriod(year, month)
	if err != nil {
		return nil, err
	}
	policy, err := engine.PolicyByName(s.cfg.Policy)
	if err != nil {
		return nil, err
	}

	employees, err := s.repo.Employee.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	codeToID, err := s.shiftTypeIndex(ctx)
	if err != nil {
		return nil, err
	}

	days := period.Days()
	rows := make([]model.ShiftRota, 0, len(employees)*len(days))
	skipped := 0
	for _, emp := range employees {
		for _, day := range days {
			code := policy.ShiftFor(day)
			typeID, ok := codeToID[code]
			if !ok {
				// A code the catalog does not carry yields no assignment
				// for that day rather than failing the run.
				skipped++
				continue
			}
			rows = append(rows, model.ShiftRota{
				EmployeeID:  emp.ID,
				Date:        day,
				ShiftTypeID: typeID,
			})
		}
	}

	if err := s.repo.Rota.ReplaceRange(ctx, period.First(), period.Last(), rows); err != nil {
		return nil, err
	}
	if skipped > 0 {
		s.logger.Warn("shift codes missing from catalog",
			zap.String("period", period.String()),
			zap.Int("skipped", skipped))
	}
	s.logger.Info("rota generated",
		zap.String("period", period.String()),
		zap.String("policy", policy.Name()),
		zap.Int("employees", len(employees)),
		zap.Int("rows", len(rows)))

	return &dto.GenerateRotaResponse{
		Period:    period.String(),
		Policy:    policy.Name(),
		Employees: len(employees),
		Rows:      len(rows),
	}, nil
}

func (s *rotaService) ListMonth(ctx context.Context, year, month int) ([]dto.RotaEntryResponse, error) {
	period, err := engine.NewPeriod(year, month)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Rota.ListByRange(ctx, period.First(), period.Last())
	if err != nil {
		return nil, err
	}
	return rotaEntries(rows), nil
}

func (s *rotaService) ListEmployeeMonth(ctx context.Context, employeeID uint, year, month int) ([]dto.RotaEntryResponse, error) {
	period, err := engine.NewPeriod(year, month)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Employee.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	rows, err := s.repo.Rota.ListByEmployeeRange(ctx, employeeID, period.First(), period.Last())
	if err != nil {
		return nil, err
	}
	return rotaEntries(rows), nil
}

func (s *rotaService) shiftTypeIndex(ctx context.Context) (map[string]uint, error) {
	types, err := s.repo.ShiftType.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]uint, len(types))
	for _, st := range types {
		index[st.Code] = st.ID
	}
	return index, nil
}

func rotaEntries(rows []model.ShiftRota) []dto.RotaEntryResponse {
	out := make([]dto.RotaEntryResponse, 0, len(rows))
	for _, r := range rows {
		e := dto.RotaEntryResponse{
			ID:         r.ID,
			Date:       r.Date.Format("2006-01-02"),
			EmployeeID: r.EmployeeID,
		}
		if r.Employee != nil {
			e.EmployeeName = r.Employee.Name
			e.EmpID = r.Employee.EmpID
		}
		if r.ShiftType != nil {
			e.ShiftCode = r.ShiftType.Code
			e.ShiftName = r.ShiftType.Description
			if start, ok := engine.NominalStarts[r.ShiftType.Code]; ok {
				e.StartTime = start.String()
			}
		}
		out = append(out, e)
	}
	return out
}
