package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rotahub/config"
	"rotahub/internal/dto"
	"rotahub/internal/engine"
	"rotahub/internal/model"
	"rotahub/internal/repository"
)

var (
	ErrExceptionNotFound = errors.New("exception not found")
	ErrInvalidTransition = errors.New("invalid exception status transition")
	ErrUnknownReviewStep = errors.New("unknown review action")
)

// ExceptionService runs the detector and manages the review workflow.
type ExceptionService interface {
	Process(ctx context.Context, year, month int) (*dto.ProcessExceptionsResponse, error)
	Get(ctx context.Context, id uint) (*model.ExceptionReport, error)
	List(ctx context.Context, req *dto.ExceptionListRequest) ([]model.ExceptionReport, int64, error)
	Review(ctx context.Context, id uint, req *dto.UpdateExceptionRequest) (*model.ExceptionReport, error)
}

type exceptionService struct {
	repo   *repository.Repository
	cfg    *config.RotaConfig
	logger *zap.Logger
}

// NewExceptionService builds the exception service.
func NewExceptionService(repo *repository.Repository, cfg *config.RotaConfig, logger *zap.Logger) ExceptionService {
	return &exceptionService{repo: repo, cfg: cfg, logger: logger}
}

// Process evaluates the month's rota against attendance and replaces the
// month's exception reports with the fresh findings. All new findings start
// pending; a re-run discards earlier review state for the month.
func (s *exceptionService) Process(ctx context.Context, year, month int) (*dto.ProcessExceptionsResponse, error) {
	period, err := engine.NewPeriod(year, month)
	if err != nil {
		return nil, err
	}

	rota, err := s.repo.Rota.ListByRange(ctx, period.First(), period.Last())
	if err != nil {
		return nil, err
	}
	attendance, err := s.repo.Attendance.ListByRange(ctx, period.First(), period.Last())
	if err != nil {
		return nil, err
	}

	marks, duplicates, err := indexAttendance(attendance)
	if err != nil {
		return nil, err
	}

	threshold := time.Duration(s.cfg.LateThresholdMinutes) * time.Minute
	detector := engine.NewDetector(threshold)

	reports := make([]model.ExceptionReport, 0)
	for _, row := range rota {
		if row.ShiftType == nil {
			return nil, fmt.Errorf("%w: rota row %d has no shift type", engine.ErrDataIntegrity, row.ID)
		}
		if row.Employee == nil {
			return nil, fmt.Errorf("%w: rota row %d has no employee", engine.ErrDataIntegrity, row.ID)
		}
		assignment := engine.Assignment{
			EmployeeID: row.EmployeeID,
			Date:       row.Date,
			ShiftCode:  row.ShiftType.Code,
		}
		finding := detector.Evaluate(assignment, marks[markKey{row.EmployeeID, dateKey(row.Date)}])
		if finding == nil {
			continue
		}
		reports = append(reports, model.ExceptionReport{
			EmployeeID: finding.EmployeeID,
			Date:       finding.Date,
			Issue:      finding.Issue,
			Status:     model.ExceptionPending,
		})
	}

	if err := s.repo.Exception.ReplaceRange(ctx, period.First(), period.Last(), reports); err != nil {
		return nil, err
	}
	s.logger.Info("exceptions processed",
		zap.String("period", period.String()),
		zap.Int("rota_rows", len(rota)),
		zap.Int("attendance_rows", len(attendance)),
		zap.Int("duplicates", duplicates),
		zap.Int("exceptions", len(reports)))

	return &dto.ProcessExceptionsResponse{
		Period:              period.String(),
		RotaRows:            len(rota),
		AttendanceRows:      len(attendance),
		DuplicateAttendance: duplicates,
		Exceptions:          len(reports),
	}, nil
}

func (s *exceptionService) Get(ctx context.Context, id uint) (*model.ExceptionReport, error) {
	exc, err := s.repo.Exception.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrExceptionNotFound
	}
	return exc, err
}

func (s *exceptionService) List(ctx context.Context, req *dto.ExceptionListRequest) ([]model.ExceptionReport, int64, error) {
	period, err := currentOrGiven(req.Year, req.Month)
	if err != nil {
		return nil, 0, err
	}
	filter := repository.ExceptionFilter{
		Status:     req.Status,
		EmployeeID: req.EmployeeID,
		Issue:      req.Issue,
	}
	return s.repo.Exception.List(ctx, period.First(), period.Last(), filter, req.Offset(), req.GetPageSize())
}

// Review advances one exception through pending → processed → resolved.
// Reopen returns a report to pending from any state.
func (s *exceptionService) Review(ctx context.Context, id uint, req *dto.UpdateExceptionRequest) (*model.ExceptionReport, error) {
	exc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var next string
	switch req.Action {
	case "process":
		if exc.Status != model.ExceptionPending {
			return nil, ErrInvalidTransition
		}
		next = model.ExceptionProcessed
	case "resolve":
		if exc.Status == model.ExceptionResolved {
			return nil, ErrInvalidTransition
		}
		next = model.ExceptionResolved
	case "reopen":
		next = model.ExceptionPending
	default:
		return nil, ErrUnknownReviewStep
	}

	exc.Status = next
	if req.Notes != "" {
		exc.Notes = req.Notes
	}
	if err := s.repo.Exception.Update(ctx, exc); err != nil {
		return nil, err
	}
	s.logger.Info("exception reviewed",
		zap.Uint("id", exc.ID), zap.String("action", req.Action), zap.String("status", exc.Status))
	return exc, nil
}

// markKey identifies one employee-day.
type markKey struct {
	EmployeeID uint
	Date       string
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }

// indexAttendance keeps the first record per employee-day in ascending-id
// order and counts the shadowed duplicates.
func indexAttendance(rows []model.Attendance) (map[markKey]*engine.AttendanceMark, int, error) {
	marks := make(map[markKey]*engine.AttendanceMark, len(rows))
	duplicates := 0
	for i := range rows {
		row := &rows[i]
		key := markKey{row.EmployeeID, dateKey(row.Date)}
		if _, seen := marks[key]; seen {
			duplicates++
			continue
		}
		mark := &engine.AttendanceMark{Status: row.Status}
		if row.TimeIn != nil {
			in, err := engine.ParseClock(*row.TimeIn)
			if err != nil {
				return nil, 0, fmt.Errorf("attendance %d: %w", row.ID, err)
			}
			mark.TimeIn = &in
		}
		if row.TimeOut != nil {
			out, err := engine.ParseClock(*row.TimeOut)
			if err != nil {
				return nil, 0, fmt.Errorf("attendance %d: %w", row.ID, err)
			}
			mark.TimeOut = &out
		}
		marks[key] = mark
	}
	return marks, duplicates, nil
}

// currentOrGiven resolves an optional period request: zero values mean the
// current month in local time.
func currentOrGiven(year, month int) (engine.Period, error) {
	if year == 0 && month == 0 {
		now := time.Now()
		return engine.NewPeriod(now.Year(), int(now.Month()))
	}
	return engine.NewPeriod(year, month)
}
