package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"rotahub/internal/dto"
	"rotahub/internal/engine"
	"rotahub/internal/repository"
)

// ReportService aggregates attendance into monthly summaries.
type ReportService interface {
	MonthlySummary(ctx context.Context, year, month int) (*dto.MonthlySummaryResponse, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService builds the report service.
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

// MonthlySummary counts each employee's statuses and scheduled rest days for
// the month. Attendance percent is present-like days (P, L, E, OD) over
// scheduled working days; an employee with no working days scores zero.
func (s *reportService) MonthlySummary(ctx context.Context, year, month int) (*dto.MonthlySummaryResponse, error) {
	period, err := engine.NewPeriod(year, month)
	if err != nil {
		return nil, err
	}

	employees, err := s.repo.Employee.ListActive(ctx)
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
	marks, _, err := indexAttendance(attendance)
	if err != nil {
		return nil, err
	}

	type tally struct {
		working, off, leave              int
		present, absent, late, early, od int
		worked                           time.Duration
	}
	tallies := make(map[uint]*tally, len(employees))
	for _, emp := range employees {
		tallies[emp.ID] = &tally{}
	}

	for _, row := range rota {
		t, ok := tallies[row.EmployeeID]
		if !ok || row.ShiftType == nil {
			continue
		}
		switch row.ShiftType.Code {
		case engine.CodeOff:
			t.off++
			continue
		case engine.CodeLeave:
			t.leave++
			continue
		}
		t.working++

		mark := marks[markKey{row.EmployeeID, dateKey(row.Date)}]
		if mark == nil {
			t.absent++
			continue
		}
		switch mark.Status {
		case engine.StatusPresent:
			t.present++
		case engine.StatusAbsent:
			t.absent++
		case engine.StatusLate:
			t.late++
		case engine.StatusEarlyLeave:
			t.early++
		case engine.StatusOnDuty:
			t.od++
		}
		if mark.TimeIn != nil && mark.TimeOut != nil {
			t.worked += engine.WorkedDuration(*mark.TimeIn, *mark.TimeOut)
		}
	}

	rows := make([]dto.MonthlySummaryRow, 0, len(employees))
	for _, emp := range employees {
		t := tallies[emp.ID]
		attended := t.present + t.late + t.early + t.od
		percent := 0.0
		if t.working > 0 {
			percent = math.Round(float64(attended)/float64(t.working)*10000) / 100
		}
		rows = append(rows, dto.MonthlySummaryRow{
			EmployeeID:        emp.ID,
			EmpID:             emp.EmpID,
			EmployeeName:      emp.Name,
			Present:           t.present,
			Absent:            t.absent,
			Late:              t.late,
			EarlyLeave:        t.early,
			OnDuty:            t.od,
			OffDays:           t.off,
			LeaveDays:         t.leave,
			WorkedHours:       engine.FormatDuration(t.worked),
			AttendancePercent: percent,
		})
	}

	return &dto.MonthlySummaryResponse{Period: period.String(), Rows: rows}, nil
}
