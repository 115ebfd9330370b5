package engine

import "time"

// Exception issue classifications.
const (
	IssueAbsent   = "Absent without info (Leave not marked)"
	IssueLate     = "Late Arrival"
	IssueMismatch = "Shift mismatch"
)

// DefaultLateThreshold is the grace period before a clock-in counts as late.
const DefaultLateThreshold = 15 * time.Minute

// Assignment is one rota row joined to its shift code.
type Assignment struct {
	EmployeeID uint
	Date       time.Time
	ShiftCode  string
}

// AttendanceMark is the clock record consulted for an assignment.
// TimeIn and TimeOut are nil when not recorded.
type AttendanceMark struct {
	Status  string
	TimeIn  *TimeOfDay
	TimeOut *TimeOfDay
}

// Attendance status codes.
const (
	StatusPresent    = "P"
	StatusAbsent     = "A"
	StatusLate       = "L"
	StatusEarlyLeave = "E"
	StatusOnDuty     = "OD"
)

// Finding is one detected discrepancy.
type Finding struct {
	EmployeeID uint
	Date       time.Time
	Issue      string
}

// Detector classifies attendance against the schedule. Rules are evaluated
// in a fixed priority order and the first match wins, so each rota row
// yields at most one finding even where the conditions are not mutually
// exclusive in principle.
type Detector struct {
	threshold time.Duration
	starts    map[string]TimeOfDay
	rules     []rule
}

type rule func(Assignment, *AttendanceMark) (string, bool)

// NewDetector builds a detector with the given late threshold.
// A non-positive threshold falls back to DefaultLateThreshold.
func NewDetector(threshold time.Duration) *Detector {
	if threshold <= 0 {
		threshold = DefaultLateThreshold
	}
	d := &Detector{
		threshold: threshold,
		starts:    NominalStarts,
	}
	d.rules = []rule{
		d.absentRule,
		d.lateRule,
		d.mismatchRule,
	}
	return d
}

// Evaluate applies the rule list to one assignment and the attendance mark
// found for it (nil when no record exists). It returns nil when the row is
// unremarkable.
func (d *Detector) Evaluate(a Assignment, att *AttendanceMark) *Finding {
	for _, r := range d.rules {
		if issue, ok := r(a, att); ok {
			return &Finding{EmployeeID: a.EmployeeID, Date: a.Date, Issue: issue}
		}
	}
	return nil
}

// absentRule: no attendance record on a working shift means an unexplained
// absence. Absence on Off or Leave is expected.
func (d *Detector) absentRule(a Assignment, att *AttendanceMark) (string, bool) {
	if att != nil {
		return "", false
	}
	if IsRestCode(a.ShiftCode) {
		return "", false
	}
	return IssueAbsent, true
}

// lateRule: present with a recorded clock-in on a shift with a known nominal
// start, and the clock-in exceeds start plus the threshold. The comparison
// is strict: arriving exactly at the threshold is not late.
func (d *Detector) lateRule(a Assignment, att *AttendanceMark) (string, bool) {
	if att == nil || att.Status != StatusPresent || IsRestCode(a.ShiftCode) {
		return "", false
	}
	if att.TimeIn == nil {
		return "", false
	}
	start, known := d.starts[a.ShiftCode]
	if !known {
		return "", false
	}
	if LatenessExcess(a.Date, *att.TimeIn, start) > d.threshold {
		return IssueLate, true
	}
	return "", false
}

// mismatchRule: present with a recorded clock-in, but the scheduled code has
// no nominal start time (a malformed or legacy code on the rota).
func (d *Detector) mismatchRule(a Assignment, att *AttendanceMark) (string, bool) {
	if att == nil || att.Status != StatusPresent || IsRestCode(a.ShiftCode) {
		return "", false
	}
	if att.TimeIn == nil {
		return "", false
	}
	if _, known := d.starts[a.ShiftCode]; known {
		return "", false
	}
	return IssueMismatch, true
}
