package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// RotaPolicy decides which shift an employee is assigned on a given day.
// The two implementations reflect two historically observed behaviors and
// must stay separately selectable; merging them would silently change the
// published schedule.
type RotaPolicy interface {
	Name() string
	ShiftFor(date time.Time) string
}

// WeekdayPattern is the default policy: General shift Monday through Friday,
// Off on Saturday and Sunday.
type WeekdayPattern struct{}

func (WeekdayPattern) Name() string { return "weekday_pattern" }

func (WeekdayPattern) ShiftFor(date time.Time) string {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return CodeOff
	default:
		return CodeGeneral
	}
}

// RandomAssignment picks a uniformly random shift per day from the rotating
// pool (M, E, N, G, Off). Leave is never auto-assigned.
type RandomAssignment struct {
	rng   *rand.Rand
	codes []string
}

// NewRandomAssignment seeds the policy. A zero seed uses the current time.
func NewRandomAssignment(seed int64) *RandomAssignment {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomAssignment{
		rng:   rand.New(rand.NewSource(seed)),
		codes: []string{CodeMorning, CodeEvening, CodeNight, CodeGeneral, CodeOff},
	}
}

func (*RandomAssignment) Name() string { return "random" }

func (p *RandomAssignment) ShiftFor(time.Time) string {
	return p.codes[p.rng.Intn(len(p.codes))]
}

// PolicyByName resolves a configured policy name.
func PolicyByName(name string) (RotaPolicy, error) {
	switch name {
	case "", "weekday_pattern":
		return WeekdayPattern{}, nil
	case "random":
		return NewRandomAssignment(0), nil
	default:
		return nil, fmt.Errorf("unknown rota policy %q", name)
	}
}
