package dates

import "time"

// Layout is the calendar-date wire format. Dates are plain strings, not
// timestamps: a booking day has no timezone.
const Layout = "2006-01-02"

func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
