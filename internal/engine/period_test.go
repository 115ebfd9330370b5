package engine

import (
	"errors"
	"testing"
	"time"
)

func TestNewPeriod_InvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		if _, err := NewPeriod(2025, month); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("month %d: want ErrInvalidPeriod, got %v", month, err)
		}
	}
}

func TestNewPeriod_InvalidYear(t *testing.T) {
	for _, year := range []int{0, 10000} {
		if _, err := NewPeriod(year, 6); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("year %d: want ErrInvalidPeriod, got %v", year, err)
		}
	}
}

func TestPeriod_Days(t *testing.T) {
	tests := []struct {
		year  int
		month int
		want  int
	}{
		{2025, 1, 31},
		{2025, 2, 28},
		{2024, 2, 29}, // leap year
		{2025, 4, 30},
		{2025, 12, 31},
	}
	for _, tt := range tests {
		p, err := NewPeriod(tt.year, tt.month)
		if err != nil {
			t.Fatalf("NewPeriod(%d, %d): %v", tt.year, tt.month, err)
		}
		days := p.Days()
		if len(days) != tt.want {
			t.Errorf("%s: want %d days, got %d", p, tt.want, len(days))
		}
		if days[0].Day() != 1 {
			t.Errorf("%s: first day is %d", p, days[0].Day())
		}
		if days[len(days)-1].Day() != tt.want {
			t.Errorf("%s: last day is %d", p, days[len(days)-1].Day())
		}
	}
}

func TestPeriod_DecemberRollover(t *testing.T) {
	p, _ := NewPeriod(2025, 12)
	if got := p.Last(); got.Year() != 2025 || got.Month() != time.December || got.Day() != 31 {
		t.Errorf("last day of December 2025: got %v", got)
	}
	next := p.Last().AddDate(0, 0, 1)
	if next.Year() != 2026 || next.Month() != time.January || next.Day() != 1 {
		t.Errorf("day after December 31 2025: got %v", next)
	}
}
