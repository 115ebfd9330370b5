package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rotahub/internal/engine"
	"rotahub/internal/repository"
)

var (
	ErrExportNoRota       = errors.New("no rota generated for the month")
	ErrExportNoData       = errors.New("nothing to export for the month")
	ErrExportGenerateFail = errors.New("workbook generation failed")
)

// ExportService renders monthly data as downloadable artifacts. Workbooks
// come back as a buffer plus a suggested filename; the handler sets the
// download headers.
type ExportService interface {
	RotaWorkbook(ctx context.Context, year, month int) (*bytes.Buffer, string, error)
	ExceptionWorkbook(ctx context.Context, year, month int) (*bytes.Buffer, string, error)
	AttendanceWorkbook(ctx context.Context, year, month int) (*bytes.Buffer, string, error)
	EmployeeWorkbook(ctx context.Context) (*bytes.Buffer, string, error)
	SummaryWorkbook(ctx context.Context, year, month int) (*bytes.Buffer, string, error)
	EmployeeRotaICS(ctx context.Context, employeeID uint, year, month int) (string, string, error)
}

type exportService struct {
	repo    *repository.Repository
	reports ReportService
	logger  *zap.Logger
}

// NewExportService builds the export service.
func NewExportService(repo *repository.Repository, reports ReportService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, reports: reports, logger: logger}
}

// RotaWorkbook lays the month out as a grid: one row per employee, one
// column per day, shift codes in the cells.
func (s *exportService) RotaWorkbook(ctx context.Context, year, month int) (*bytes.Buffer, string, error) {
	period, err := engine.NewPeriod(year, month)
	if err != nil {
		return nil, "", err
	}
	rows, err := s.repo.Rota.ListByRange(ctx, period.First(), period.Last())
	if err != nil {
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", ErrExportNoRota
	}

	type empInfo struct {
		id    uint
		empID string
		name  string
	}
	codeByCell := make(map[string]string) // "empID:day" → shift code
	empSeen := make(map[uint]bool)
	var emps []empInfo
	for _, r := range rows {
		if r.Employee == nil || r.ShiftType == nil {
			continue
		}
		if !empSeen[r.EmployeeID] {
			empSeen[r.EmployeeID] = true
			emps = append(emps, empInfo{r.EmployeeID, r.Employee.EmpID, r.Employee.Name})
		}
		codeByCell[fmt.Sprintf("%s:%d", r.Employee.EmpID, r.Date.Day())] = r.ShiftType.Code
	}
	sort.Slice(emps, func(i, j int) bool { return emps[i].empID < emps[j].empID })

	days := period.Days()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Rota"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 24)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Shift Rota %s", period.String()))
	f.MergeCell(sheet, "A1", cellRef(2+len(days), 1))
	f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	f.SetCellValue(sheet, cellRef(1, 2), "Emp ID")
	f.SetCellValue(sheet, cellRef(2, 2), "Name")
	for i, day := range days {
		f.SetCellValue(sheet, cellRef(3+i, 2), day.Day())
	}

	row := 3
	for _, emp := range emps {
		f.SetCellValue(sheet, cellRef(1, row), emp.empID)
		f.SetCellValue(sheet, cellRef(2, row), emp.name)
		for i, day := range days {
			code, ok := codeByCell[fmt.Sprintf("%s:%d", emp.empID, day.Day())]
			if !ok {
				code = "-"
			}
			f.SetCellValue(sheet, cellRef(3+i, row), code)
		}
		row++
	}

	buf, err := writeWorkbook(f)
	if err != nil {
		s.logger.Error("rota workbook write failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, fmt.Sprintf("rota_%s.xlsx", period.String()), nil
}

// ExceptionWorkbook is a flat listing of the month's exception reports.
func (s *exportService) ExceptionWorkbook(ctx context.Context, year, month int) (*bytes.Buffer, string, error) {
	period, err := engine.NewPeriod(year, month)
	if err != nil {
		return nil, "", err
	}
	reports, err := s.repo.Exception.ListByRange(ctx, period.First(), period.Last())
	if err != nil {
		return nil, "", err
	}
	if len(reports) == 0 {
		return nil, "", ErrExportNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Exceptions"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 24)
	f.SetColWidth(sheet, "C", "C", 12)
	f.SetColWidth(sheet, "D", "D", 40)
	f.SetColWidth(sheet, "E", "F", 14)

	headers := []string{"Emp ID", "Name", "Date", "Issue", "Status", "Notes"}
	for i, h := range headers {
		f.SetCellValue(sheet, cellRef(1+i, 1), h)
	}

	row := 2
	for _, rpt := range reports {
		empID, name := "", ""
		if rpt.Employee != nil {
			empID, name = rpt.Employee.EmpID, rpt.Employee.Name
		}
		f.SetCellValue(sheet, cellRef(1, row), empID)
		f.SetCellValue(sheet, cellRef(2, row), name)
		f.SetCellValue(sheet, cellRef(3, row), rpt.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, cellRef(4, row), rpt.Issue)
		f.SetCellValue(sheet, cellRef(5, row), rpt.Status)
		f.SetCellValue(sheet, cellRef(6, row), rpt.Notes)
		row++
	}

	buf, err := writeWorkbook(f)
	if err != nil {
		s.logger.Error("exception workbook write failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, fmt.Sprintf("exceptions_%s.xlsx", period.String()), nil
}

// AttendanceWorkbook is a flat listing of the month's attendance records,
// with the worked duration where both clock times are present.
func (s *exportService) AttendanceWorkbook(ctx context.Context, year, month int) (*bytes.Buffer, string, error) {
	period, err := engine.NewPeriod(year, month)
	if err != nil {
		return nil, "", err
	}
	records, err := s.repo.Attendance.ListByRange(ctx, period.First(), period.Last())
	if err != nil {
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoData
	}
	emps, _, err := s.repo.Employee.List(ctx, "", 0, 10000)
	if err != nil {
		return nil, "", err
	}
	empByID := make(map[uint]string, len(emps))
	for _, e := range emps {
		empByID[e.ID] = e.EmpID
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "F", 12)

	headers := []string{"Emp ID", "Date", "Status", "Time In", "Time Out", "Worked"}
	for i, h := range headers {
		f.SetCellValue(sheet, cellRef(1+i, 1), h)
	}

	row := 2
	for _, rec := range records {
		timeIn, timeOut, worked := "", "", ""
		if rec.TimeIn != nil {
			timeIn = *rec.TimeIn
		}
		if rec.TimeOut != nil {
			timeOut = *rec.TimeOut
		}
		if rec.TimeIn != nil && rec.TimeOut != nil {
			in, errIn := engine.ParseClock(*rec.TimeIn)
			out, errOut := engine.ParseClock(*rec.TimeOut)
			if errIn == nil && errOut == nil {
				worked = engine.FormatDuration(engine.WorkedDuration(in, out))
			}
		}
		f.SetCellValue(sheet, cellRef(1, row), empByID[rec.EmployeeID])
		f.SetCellValue(sheet, cellRef(2, row), rec.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, cellRef(3, row), rec.Status)
		f.SetCellValue(sheet, cellRef(4, row), timeIn)
		f.SetCellValue(sheet, cellRef(5, row), timeOut)
		f.SetCellValue(sheet, cellRef(6, row), worked)
		row++
	}

	buf, err := writeWorkbook(f)
	if err != nil {
		s.logger.Error("attendance workbook write failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, fmt.Sprintf("attendance_%s.xlsx", period.String()), nil
}

// EmployeeWorkbook lists the full roster.
func (s *exportService) EmployeeWorkbook(ctx context.Context) (*bytes.Buffer, string, error) {
	emps, _, err := s.repo.Employee.List(ctx, "", 0, 10000)
	if err != nil {
		return nil, "", err
	}
	if len(emps) == 0 {
		return nil, "", ErrExportNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Employees"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "F", 18)

	headers := []string{"Emp ID", "Name", "Designation", "Location", "Department", "Grade", "Status"}
	for i, h := range headers {
		f.SetCellValue(sheet, cellRef(1+i, 1), h)
	}

	row := 2
	for _, emp := range emps {
		values := []interface{}{
			emp.EmpID, emp.Name, emp.Designation, emp.Location, emp.Department, emp.Grade, emp.Status,
		}
		for i, v := range values {
			f.SetCellValue(sheet, cellRef(1+i, row), v)
		}
		row++
	}

	buf, err := writeWorkbook(f)
	if err != nil {
		s.logger.Error("employee workbook write failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, "employees.xlsx", nil
}

// SummaryWorkbook renders the monthly summary report.
func (s *exportService) SummaryWorkbook(ctx context.Context, year, month int) (*bytes.Buffer, string, error) {
	summary, err := s.reports.MonthlySummary(ctx, year, month)
	if err != nil {
		return nil, "", err
	}
	if len(summary.Rows) == 0 {
		return nil, "", ErrExportNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Summary"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 24)

	headers := []string{
		"Emp ID", "Name", "Present", "Absent", "Late", "Early Leave",
		"On Duty", "Off", "Leave", "Worked (HH:MM)", "Attendance %",
	}
	for i, h := range headers {
		f.SetCellValue(sheet, cellRef(1+i, 1), h)
	}

	row := 2
	for _, r := range summary.Rows {
		values := []interface{}{
			r.EmpID, r.EmployeeName, r.Present, r.Absent, r.Late, r.EarlyLeave,
			r.OnDuty, r.OffDays, r.LeaveDays, r.WorkedHours, r.AttendancePercent,
		}
		for i, v := range values {
			f.SetCellValue(sheet, cellRef(1+i, row), v)
		}
		row++
	}

	buf, err := writeWorkbook(f)
	if err != nil {
		s.logger.Error("summary workbook write failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, fmt.Sprintf("summary_%s.xlsx", summary.Period), nil
}

// EmployeeRotaICS serializes one employee's month as an iCalendar feed.
// Working shifts become 8-hour events from the nominal start; Off and Leave
// become all-day markers.
func (s *exportService) EmployeeRotaICS(ctx context.Context, employeeID uint, year, month int) (string, string, error) {
	period, err := engine.NewPeriod(year, month)
	if err != nil {
		return "", "", err
	}
	emp, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrEmployeeNotFound
		}
		return "", "", err
	}
	rows, err := s.repo.Rota.ListByEmployeeRange(ctx, employeeID, period.First(), period.Last())
	if err != nil {
		return "", "", err
	}
	if len(rows) == 0 {
		return "", "", ErrExportNoRota
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//rotahub//shift rota//EN")

	now := time.Now()
	for _, r := range rows {
		if r.ShiftType == nil {
			continue
		}
		code := r.ShiftType.Code
		uid := fmt.Sprintf("rota-%d-%s@rotahub", r.EmployeeID, r.Date.Format("20060102"))
		event := cal.AddEvent(uid)
		event.SetDtStampTime(now)

		if start, ok := engine.NominalStarts[code]; ok {
			begin := start.On(r.Date)
			event.SetStartAt(begin)
			event.SetEndAt(begin.Add(8 * time.Hour))
			event.SetSummary(fmt.Sprintf("%s shift (%s)", r.ShiftType.Description, code))
		} else {
			event.SetAllDayStartAt(r.Date)
			event.SetAllDayEndAt(r.Date.AddDate(0, 0, 1))
			event.SetSummary(r.ShiftType.Description)
		}
	}

	filename := fmt.Sprintf("rota_%s_%s.ics", emp.EmpID, period.String())
	return cal.Serialize(), filename, nil
}

func writeWorkbook(f *excelize.File) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func cellRef(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
