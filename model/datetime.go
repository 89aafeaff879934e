package model

import "cloud.google.com/go/civil"

// Time is an HHMM time field. BAI2 uses 2400 for end of day and 9999 when the
// sender does not state a time; both are kept apart from ordinary clock times.
type Time struct {
	Clock    civil.Time
	EndOfDay bool
	Unknown  bool
}

// String renders the time as HH:MM:SS, "end_of_day" or "unknown".
func (t Time) String() string {
	switch {
	case t.Unknown:
		return "unknown"
	case t.EndOfDay:
		return "end_of_day"
	default:
		return t.Clock.String()
	}
}

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
