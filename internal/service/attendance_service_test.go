package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"rotahub/internal/dto"
	"rotahub/internal/model"
)

func setupAttendanceService() (AttendanceService, *testRepos) {
	repos := newTestRepos()
	svc := NewAttendanceService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestAttendanceCreate_UnknownEmployee(t *testing.T) {
	svc, _ := setupAttendanceService()
	_, err := svc.Create(context.Background(), &dto.CreateAttendanceRequest{
		EmployeeID: 42, Date: "2025-06-02", Status: "P",
	})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("err = %v, want ErrEmployeeNotFound", err)
	}
}

func TestAttendanceCreate_WithClockTimes(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedEmployees(repos, 1)

	att, err := svc.Create(context.Background(), &dto.CreateAttendanceRequest{
		EmployeeID: 1, Date: "2025-06-02", Status: "P", TimeIn: "09:05", TimeOut: "17:30",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if att.TimeIn == nil || *att.TimeIn != "09:05" {
		t.Errorf("time_in not stored")
	}
	if len(repos.attendance.rows) != 1 {
		t.Errorf("stored rows = %d, want 1", len(repos.attendance.rows))
	}
}

func TestImportCSV_HeaderAndGoodRows(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedEmployees(repos, 2)

	csv := strings.Join([]string{
		"emp_id,date,status,time_in,time_out",
		"A001,2025-06-02,P,09:00,17:30",
		"B001,2025-06-02,P,09:20,",
		"A001,2025-06-03,A,,",
	}, "\n")

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if result.Imported != 3 || result.Skipped != 0 {
		t.Errorf("imported = %d skipped = %d, want 3/0", result.Imported, result.Skipped)
	}
	if len(repos.attendance.rows) != 3 {
		t.Errorf("stored rows = %d, want 3", len(repos.attendance.rows))
	}
}

func TestImportCSV_BadRowsSkippedNotFatal(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedEmployees(repos, 1)

	csv := strings.Join([]string{
		"A001,2025-06-02,P,09:00,17:30",
		"ZZZZ,2025-06-02,P,09:00,17:30", // unknown employee
		"A001,02/06/2025,P,09:00,17:30", // bad date
		"A001,2025-06-03,X,,",           // bad status
		"A001,2025-06-04,P,9am,",        // bad clock
	}, "\n")

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("imported = %d, want 1", result.Imported)
	}
	if result.Skipped != 4 {
		t.Errorf("skipped = %d, want 4", result.Skipped)
	}
	if len(result.Errors) != 4 {
		t.Errorf("errors = %d, want 4", len(result.Errors))
	}
}

func TestImportCSV_Empty(t *testing.T) {
	svc, _ := setupAttendanceService()
	_, err := svc.ImportCSV(context.Background(), strings.NewReader(""))
	if !errors.Is(err, ErrEmptyImport) {
		t.Errorf("err = %v, want ErrEmptyImport", err)
	}
}

func TestAttendanceList_WorkedDurationRollsOverMidnight(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedEmployees(repos, 1)
	in, out := "23:05", "07:10"
	repos.attendance.rows = append(repos.attendance.rows, model.Attendance{
		ID: 1, EmployeeID: 1, Date: june(2), Status: "P", TimeIn: &in, TimeOut: &out,
	})

	rows, _, err := svc.List(context.Background(), &dto.AttendanceListRequest{
		PeriodRequest: dto.PeriodRequest{Year: 2025, Month: 6},
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Worked != "08:05" {
		t.Errorf("worked = %q, want 08:05", rows[0].Worked)
	}
}
