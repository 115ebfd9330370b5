package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidPeriod is returned when a reporting period is out of range.
	ErrInvalidPeriod = errors.New("invalid reporting period")
	// ErrDataIntegrity is returned when a rota row references a missing
	// employee or shift type. It is propagated, never swallowed, so a run
	// cannot silently produce a misleading exception report.
	ErrDataIntegrity = errors.New("referential integrity violation")
)

// Period identifies one calendar month to generate or process.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod validates year/month and returns the period.
func NewPeriod(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %d not in 1-12", ErrInvalidPeriod, month)
	}
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("%w: year %d not in 1-9999", ErrInvalidPeriod, year)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// First returns the first day of the month at midnight UTC.
func (p Period) First() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns the last day of the month at midnight UTC.
// December rolls over into January of the following year.
func (p Period) Last() time.Time {
	return p.First().AddDate(0, 1, -1)
}

// Days returns every calendar day of the month in order.
func (p Period) Days() []time.Time {
	first := p.First()
	n := p.Last().Day()
	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// String formats the period as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
