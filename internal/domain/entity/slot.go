package entity

import (
	"errors"
	"time"
)

// DayLayout is the calendar-day format stored in Appointment.SlotDay.
const DayLayout = "2006-01-02"

var ErrUnparseableDate = errors.New("unparseable date")

// Slot is the (doctor, calendar day, time label) tuple that at most one
// active appointment may hold. Time is compared as an opaque label.
type Slot struct {
	DoctorName string
	Day        string
	Time       string
}

// DayWindow is the inclusive range [00:00:00.000, 23:59:59.999] of one
// calendar day in a given location.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, bounds included.
func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DayWindowOf returns the calendar day of t, as seen in loc.
func DayWindowOf(t time.Time, loc *time.Location) DayWindow {
	start := StartOfDay(t, loc)
	return DayWindow{
		Start: start,
		End:   start.AddDate(0, 0, 1).Add(-time.Millisecond),
	}
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayKey formats the calendar day of t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	DayLayout,
}

// ParseAppointmentDate accepts a date or date-time. Values without an
// explicit offset are read in loc.
func ParseAppointmentDate(raw string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparseableDate
}
