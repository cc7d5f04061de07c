package model

import (
	"strings"
	"time"
)

// dateLayout is the wire format for record dates.
const dateLayout = "2006-01-02"

// Date is a civil calendar date without a time component. The zero value
// represents an absent date.
type Date time.Time

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a date in ISO "YYYY-MM-DD" form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date(t), nil
}

// Today returns the current date in the local time zone.
func Today() Date {
	y, m, d := time.Now().Date()
	return NewDate(y, m, d)
}

// String formats the date as "YYYY-MM-DD", or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return time.Time(d).Format(dateLayout)
}

// MonthKey returns the "YYYY-MM" key identifying the date's calendar month,
// or "" for the zero date. Keys compare chronologically as plain strings.
func (d Date) MonthKey() string {
	if d.IsZero() {
		return ""
	}
	return time.Time(d).Format("2006-01")
}

// SameMonth reports whether the date falls in the given calendar month.
func (d Date) SameMonth(year int, month time.Month) bool {
	t := time.Time(d)
	return !d.IsZero() && t.Year() == year && t.Month() == month
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return time.Time(d).Before(time.Time(other))
}

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool {
	return time.Time(d).Equal(time.Time(other))
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string. Anything unparsable becomes
// the zero date rather than an error, so one bad entry cannot poison a whole
// collection; validation at the load boundary drops such records.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = parsed
	return nil
}
