package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"rotahub/internal/engine"
	"rotahub/internal/model"
)

func makeAttendance(id uint, day int, status string, in, out *string) model.Attendance {
	return model.Attendance{
		ID: id, EmployeeID: 1, Date: june(day), Status: status, TimeIn: in, TimeOut: out,
	}
}

func setupReportService() (ReportService, *testRepos) {
	repos := newTestRepos()
	svc := NewReportService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestMonthlySummary_CountsAndPercent(t *testing.T) {
	svc, repos := setupReportService()
	seedEmployees(repos, 1)

	// Four working days and one off day.
	seedRota(repos, 2, engine.CodeGeneral)
	seedRota(repos, 3, engine.CodeGeneral)
	seedRota(repos, 4, engine.CodeGeneral)
	seedRota(repos, 5, engine.CodeGeneral)
	seedRota(repos, 1, engine.CodeOff)

	seedAttendance(repos, 2, engine.StatusPresent, "09:00")
	seedAttendance(repos, 3, engine.StatusLate, "09:40")
	seedAttendance(repos, 4, engine.StatusAbsent, "")
	// Day 5: no record at all, counts as absent.

	resp, err := svc.MonthlySummary(context.Background(), 2025, 6)
	if err != nil {
		t.Fatalf("MonthlySummary: %v", err)
	}
	if len(resp.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(resp.Rows))
	}
	row := resp.Rows[0]
	if row.Present != 1 || row.Late != 1 || row.Absent != 2 || row.OffDays != 1 {
		t.Errorf("tallies = P%d L%d A%d Off%d, want P1 L1 A2 Off1",
			row.Present, row.Late, row.Absent, row.OffDays)
	}
	// 2 attended out of 4 working days.
	if row.AttendancePercent != 50 {
		t.Errorf("attendance percent = %v, want 50", row.AttendancePercent)
	}
}

func TestMonthlySummary_WorkedHoursAggregated(t *testing.T) {
	svc, repos := setupReportService()
	seedEmployees(repos, 1)
	seedRota(repos, 2, engine.CodeGeneral)
	seedRota(repos, 3, engine.CodeNight)

	in1, out1 := "09:00", "17:30"
	in2, out2 := "23:00", "07:00"
	repos.attendance.rows = append(repos.attendance.rows,
		makeAttendance(1, 2, engine.StatusPresent, &in1, &out1),
		makeAttendance(2, 3, engine.StatusPresent, &in2, &out2),
	)

	resp, err := svc.MonthlySummary(context.Background(), 2025, 6)
	if err != nil {
		t.Fatalf("MonthlySummary: %v", err)
	}
	// 8:30 same-day plus 8:00 across midnight.
	if got := resp.Rows[0].WorkedHours; got != "16:30" {
		t.Errorf("worked hours = %q, want 16:30", got)
	}
}

func TestMonthlySummary_NoWorkingDaysScoresZero(t *testing.T) {
	svc, repos := setupReportService()
	seedEmployees(repos, 1)
	seedRota(repos, 1, engine.CodeOff)

	resp, err := svc.MonthlySummary(context.Background(), 2025, 6)
	if err != nil {
		t.Fatalf("MonthlySummary: %v", err)
	}
	if resp.Rows[0].AttendancePercent != 0 {
		t.Errorf("attendance percent = %v, want 0", resp.Rows[0].AttendancePercent)
	}
}
