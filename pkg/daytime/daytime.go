package daytime

import "time"

// All day-boundary math is done in UTC so that a "calendar day" means the
// same thing regardless of the server timezone.

func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// ConsecutiveDays reports whether a and b fall on adjacent calendar days,
// in either order.
func ConsecutiveDays(a, b time.Time) bool {
	diff := StartOfDay(b).Sub(StartOfDay(a))
	if diff < 0 {
		diff = -diff
	}
	return diff == 24*time.Hour
}
