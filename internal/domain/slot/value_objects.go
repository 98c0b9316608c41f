package slot

import (
	"fmt"
	"time"

	"venuebook/internal/pkg/errs"
)

var (
	ErrInvalidTimeOfDay = errs.New("invalid time of day")
	ErrInvalidDate      = errs.New("invalid date")
	ErrInvalidDateRange = errs.New("effective start date must not be after effective end date")
)

// TimeOfDay is a wall-clock time with minute precision, detached from any date.
type TimeOfDay struct {
	minutes int // minutes since midnight, 0..1439
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay accepts "15:04" and "15:04:05"; seconds are discarded.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return TimeOfDay{}, errs.Mark(err, ErrInvalidTimeOfDay)
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Date is a civil calendar date without an instant or timezone. Bookings key
// slot occupancy by Date, never by timestamp, so "same day" comparisons cannot
// drift across timezones.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 1 || month < time.January || month > time.December || day < 1 {
		return Date{}, ErrInvalidDate
	}
	// Reject overflow days (e.g. Feb 30) via normalization round-trip
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, ErrInvalidDate
	}
	return Date{year: year, month: month, day: day}, nil
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, errs.Mark(err, ErrInvalidDate)
	}
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

// DateOf extracts the calendar date of an instant in the given location.
func DateOf(t time.Time, loc *time.Location) Date {
	lt := t.In(loc)
	return Date{year: lt.Year(), month: lt.Month(), day: lt.Day()}
}

func (d Date) Year() int {
	return d.year
}

func (d Date) Month() time.Month {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// At composes the date with a time-of-day into an absolute instant in loc.
func (d Date) At(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, t.Hour(), t.Minute(), 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// DateRange is an inclusive calendar date interval.
type DateRange struct {
	start Date
	end   Date
}

func NewDateRange(start, end Date) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrInvalidDate
	}
	if end.Before(start) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() Date {
	return r.start
}

func (r DateRange) End() Date {
	return r.end
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.start) && !d.After(r.end)
}
