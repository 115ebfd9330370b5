package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rotahub/internal/dto"
	"rotahub/internal/engine"
	"rotahub/internal/model"
	"rotahub/internal/repository"
)

var ErrEmptyImport = errors.New("import contains no data rows")

// validStatuses mirrors the attendance status codes accepted over the API.
var validStatuses = map[string]bool{
	engine.StatusPresent:    true,
	engine.StatusAbsent:     true,
	engine.StatusLate:       true,
	engine.StatusEarlyLeave: true,
	engine.StatusOnDuty:     true,
}

// AttendanceService records clock events, manually and from CSV uploads.
type AttendanceService interface {
	Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*model.Attendance, error)
	List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, int64, error)
	ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResult, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService builds the attendance service.
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

func (s *attendanceService) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*model.Attendance, error) {
	if _, err := s.repo.Employee.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}
	att := &model.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     req.Status,
	}
	if req.TimeIn != "" {
		att.TimeIn = &req.TimeIn
	}
	if req.TimeOut != "" {
		att.TimeOut = &req.TimeOut
	}
	if err := s.repo.Attendance.Create(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *attendanceService) List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, int64, error) {
	if req.EmployeeID != 0 || req.Year != 0 || req.Month != 0 {
		period, err := currentOrGiven(req.Year, req.Month)
		if err != nil {
			return nil, 0, err
		}
		var rows []model.Attendance
		if req.EmployeeID != 0 {
			rows, err = s.repo.Attendance.ListByEmployeeRange(ctx, req.EmployeeID, period.First(), period.Last())
		} else {
			rows, err = s.repo.Attendance.ListByRange(ctx, period.First(), period.Last())
		}
		if err != nil {
			return nil, 0, err
		}
		return attendanceResponses(rows), int64(len(rows)), nil
	}

	rows, total, err := s.repo.Attendance.ListRecent(ctx, req.Offset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	return attendanceResponses(rows), total, nil
}

// ImportCSV ingests rows of the form
//
//	emp_id,date,status,time_in,time_out
//
// with an optional header line. Rows naming an unknown employee or carrying
// a malformed field are skipped and reported, not fatal.
func (s *attendanceService) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &dto.ImportResult{}
	batch := make([]model.Attendance, 0, 64)
	empCache := make(map[string]uint)
	line := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 && looksLikeHeader(record) {
			continue
		}
		row, rowErr := s.parseImportRow(ctx, record, empCache)
		if rowErr != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, rowErr))
			continue
		}
		batch = append(batch, *row)
	}

	if len(batch) == 0 {
		if result.Skipped == 0 {
			return nil, ErrEmptyImport
		}
		return result, nil
	}
	if err := s.repo.Attendance.BatchCreate(ctx, batch); err != nil {
		return nil, err
	}
	result.Imported = len(batch)
	s.logger.Info("attendance imported",
		zap.Int("imported", result.Imported), zap.Int("skipped", result.Skipped))
	return result, nil
}

func (s *attendanceService) parseImportRow(ctx context.Context, record []string, empCache map[string]uint) (*model.Attendance, error) {
	if len(record) < 3 {
		return nil, fmt.Errorf("expected at least 3 fields, got %d", len(record))
	}
	empID := strings.TrimSpace(record[0])
	if empID == "" {
		return nil, errors.New("empty employee id")
	}

	id, ok := empCache[empID]
	if !ok {
		emp, err := s.repo.Employee.GetByEmpID(ctx, empID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("unknown employee %q", empID)
		}
		if err != nil {
			return nil, err
		}
		id = emp.ID
		empCache[empID] = id
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(record[1]))
	if err != nil {
		return nil, fmt.Errorf("bad date %q", record[1])
	}
	status := strings.ToUpper(strings.TrimSpace(record[2]))
	if !validStatuses[status] {
		return nil, fmt.Errorf("bad status %q", record[2])
	}

	att := &model.Attendance{EmployeeID: id, Date: date, Status: status}
	if len(record) > 3 {
		if v, err := clockField(record[3]); err != nil {
			return nil, fmt.Errorf("bad time_in %q", record[3])
		} else if v != nil {
			att.TimeIn = v
		}
	}
	if len(record) > 4 {
		if v, err := clockField(record[4]); err != nil {
			return nil, fmt.Errorf("bad time_out %q", record[4])
		} else if v != nil {
			att.TimeOut = v
		}
	}
	return att, nil
}

// clockField validates an optional HH:MM cell, returning nil for blanks.
func clockField(cell string) (*string, error) {
	v := strings.TrimSpace(cell)
	if v == "" {
		return nil, nil
	}
	if _, err := engine.ParseClock(v); err != nil {
		return nil, err
	}
	return &v, nil
}

func looksLikeHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(record[0]))
	return first == "emp_id" || first == "empid" || first == "employee_id"
}

func attendanceResponses(rows []model.Attendance) []dto.AttendanceResponse {
	out := make([]dto.AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		resp := dto.AttendanceResponse{
			ID:         r.ID,
			EmployeeID: r.EmployeeID,
			Date:       r.Date.Format("2006-01-02"),
			Status:     r.Status,
		}
		if r.Employee != nil {
			resp.EmployeeName = r.Employee.Name
		}
		if r.TimeIn != nil {
			resp.TimeIn = *r.TimeIn
		}
		if r.TimeOut != nil {
			resp.TimeOut = *r.TimeOut
		}
		if r.TimeIn != nil && r.TimeOut != nil {
			in, errIn := engine.ParseClock(*r.TimeIn)
			outT, errOut := engine.ParseClock(*r.TimeOut)
			if errIn == nil && errOut == nil {
				resp.Worked = engine.FormatDuration(engine.WorkedDuration(in, outT))
			}
		}
		out = append(out, resp)
	}
	return out
}
