package engine

import "time"

// LatenessExcess returns clock-in minus nominal start, both anchored to the
// rota date. No overnight adjustment is applied: a night-shift clock-in after
// midnight yields a large negative delta and is never flagged late. This
// mirrors the established reporting behavior; see WorkedDuration for the
// routine that does roll over.
func LatenessExcess(date time.Time, timeIn, nominalStart TimeOfDay) time.Duration {
	return timeIn.On(date).Sub(nominalStart.On(date))
}

// WorkedDuration returns the span between clock-in and clock-out. When the
// clock-out is earlier than the clock-in it is assumed to fall on the next
// day. Display-only helper; intentionally distinct from LatenessExcess.
func WorkedDuration(timeIn, timeOut TimeOfDay) time.Duration {
	anchor := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	in := timeIn.On(anchor)
	out := timeOut.On(anchor)
	if out.Before(in) {
		out = out.AddDate(0, 0, 1)
	}
	return out.Sub(in)
}

// FormatDuration renders a duration as HH:MM for report columns.
func FormatDuration(d time.Duration) string {
	total := int(d.Minutes())
	return TimeOfDay{Hour: total / 60, Minute: total % 60}.String()
}
