package engine

import (
	"fmt"
	"time"
)

// Shift codes recognized by the rota and the detector.
const (
	CodeMorning = "M"
	CodeEvening = "E"
	CodeNight   = "N"
	CodeGeneral = "G"
	CodeOff     = "Off"
	CodeLeave   = "Leave"
)

// ShiftDescriptions maps each catalog code to its display text.
var ShiftDescriptions = map[string]string{
	CodeMorning: "Morning",
	CodeEvening: "Evening",
	CodeNight:   "Night",
	CodeGeneral: "General",
	CodeOff:     "Off",
	CodeLeave:   "Leave",
}

// NominalStarts maps working shift codes to their expected clock-in time.
// Off and Leave carry no start time.
var NominalStarts = map[string]TimeOfDay{
	CodeMorning: {Hour: 7},
	CodeEvening: {Hour: 15},
	CodeNight:   {Hour: 23},
	CodeGeneral: {Hour: 9},
}

// IsRestCode reports whether the code means no attendance is expected.
func IsRestCode(code string) bool {
	return code == CodeOff || code == CodeLeave
}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseClock parses an HH:MM string.
func ParseClock(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// On anchors the clock time to the given calendar date.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
