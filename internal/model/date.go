package model

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDateFormat = errors.New("due date must have month, day and year components")
	ErrInvalidDate       = errors.New("due date is not a valid calendar date")
)

// CalendarDate is a due date without a time component. Its JSON form is
// {"year":..,"month":..,"day":..}, which front ends convert to and from
// human-readable strings.
type CalendarDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Validate rejects triples that do not name a real calendar date, such as
// month 13 or February 31.
func (d CalendarDate) Validate() error {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 || d.Year < 1 {
		return ErrInvalidDate
	}
	// time.Date normalizes overflow (Feb 31 becomes Mar 2/3), so a
	// round-trip mismatch means the day does not exist in that month.
	t := d.Time()
	if t.Year() != d.Year || int(t.Month()) != d.Month || t.Day() != d.Day {
		return ErrInvalidDate
	}
	return nil
}

// Time returns the date at midnight UTC, the stored representation.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// DateOf converts a stored timestamp back to its calendar date.
func DateOf(t time.Time) CalendarDate {
	t = t.UTC()
	return CalendarDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseCalendarDate parses a month-day-year string such as "12/25/2024"
// or "12-25-2024". The separator may be "/" or "-".
func ParseCalendarDate(s string) (CalendarDate, error) {
	parts := strings.Split(strings.ReplaceAll(s, "-", "/"), "/")
	if len(parts) != 3 {
		return CalendarDate{}, ErrInvalidDateFormat
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return CalendarDate{}, ErrInvalidDateFormat
		}
		nums[i] = n
	}

	d := CalendarDate{Month: nums[0], Day: nums[1], Year: nums[2]}
	if err := d.Validate(); err != nil {
		return CalendarDate{}, err
	}
	return d, nil
}

// OptionalDate is a due date field in a PATCH body. It distinguishes a key
// that was not supplied (Set false) from an explicit null (Set true, Value
// nil), which clears the stored date.
type OptionalDate struct {
	Set   bool
	Value *CalendarDate
}

func (o *OptionalDate) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var d CalendarDate
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	o.Value = &d
	return nil
}
