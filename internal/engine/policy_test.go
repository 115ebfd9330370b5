package engine

import (
	"testing"
	"time"
)

func TestWeekdayPattern(t *testing.T) {
	p := WeekdayPattern{}

	// June 2025: the 2nd is a Monday, the 7th a Saturday, the 8th a Sunday.
	tests := []struct {
		day  int
		want string
	}{
		{2, CodeGeneral},
		{3, CodeGeneral},
		{4, CodeGeneral},
		{5, CodeGeneral},
		{6, CodeGeneral},
		{7, CodeOff},
		{8, CodeOff},
	}
	for _, tt := range tests {
		date := time.Date(2025, time.June, tt.day, 0, 0, 0, 0, time.UTC)
		if got := p.ShiftFor(date); got != tt.want {
			t.Errorf("%s (%s): want %s, got %s", date.Format("2006-01-02"), date.Weekday(), tt.want, got)
		}
	}
}

func TestRandomAssignment_OnlyRotatingPool(t *testing.T) {
	p := NewRandomAssignment(42)
	allowed := map[string]bool{
		CodeMorning: true, CodeEvening: true, CodeNight: true,
		CodeGeneral: true, CodeOff: true,
	}
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		code := p.ShiftFor(date.AddDate(0, 0, i))
		if !allowed[code] {
			t.Fatalf("random policy produced %q", code)
		}
		if code == CodeLeave {
			t.Fatal("random policy must never assign Leave")
		}
	}
}

func TestRandomAssignment_SeedReproducible(t *testing.T) {
	a := NewRandomAssignment(7)
	b := NewRandomAssignment(7)
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		d := date.AddDate(0, 0, i)
		if a.ShiftFor(d) != b.ShiftFor(d) {
			t.Fatal("same seed must produce the same sequence")
		}
	}
}

func TestPolicyByName(t *testing.T) {
	p, err := PolicyByName("")
	if err != nil || p.Name() != "weekday_pattern" {
		t.Errorf("empty name: want weekday_pattern default, got %v, %v", p, err)
	}
	if _, err := PolicyByName("random"); err != nil {
		t.Errorf("random: %v", err)
	}
	if _, err := PolicyByName("fortnightly"); err == nil {
		t.Error("unknown policy name must error")
	}
}
