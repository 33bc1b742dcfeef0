package service

import "time"

// NextStreak derives the consecutive-activity counter from the previous
// activity date. Pure function, callers pair it with an unconditional
// write of the activity date.
//
//	no prior date      -> 1
//	same calendar day  -> unchanged
//	next calendar day  -> current + 1
//	anything else      -> 1 (gap or clock skew resets)
func NextStreak(lastActivity *time.Time, currentStreak int, today time.Time) int {
	if lastActivity == nil {
		return 1
	}
	diff := daysBetween(*lastActivity, today)
	switch diff {
	case 0:
		return currentStreak
	case 1:
		return currentStreak + 1
	default:
		return 1
	}
}

func daysBetween(from, to time.Time) int {
	return int(truncateToDay(to).Sub(truncateToDay(from)).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
