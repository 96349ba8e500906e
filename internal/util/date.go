package util

import "time"

const DateLayout = "2006-01-02"

// Day truncates a timestamp to its UTC calendar day. All accounting dates
// in the system are day-granular.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func DateStr(t time.Time) string {
	return t.Format(DateLayout)
}

func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}
