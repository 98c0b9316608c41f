package pgconv

import (
	"time"

	"venuebook/internal/domain/slot"

	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPg(d slot.Date) pgtype.Date {
	return pgtype.Date{
		Time:  time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		Valid: true,
	}
}

func DateFromPg(pd pgtype.Date) (slot.Date, error) {
	if !pd.Valid {
		return slot.Date{}, slot.ErrInvalidDate
	}
	return slot.NewDate(pd.Time.Year(), pd.Time.Month(), pd.Time.Day())
}

func TimeOfDayToPg(t slot.TimeOfDay) pgtype.Time {
	return pgtype.Time{
		Microseconds: (int64(t.Hour())*3600 + int64(t.Minute())*60) * 1_000_000,
		Valid:        true,
	}
}

func TimeOfDayFromPg(pt pgtype.Time) (slot.TimeOfDay, error) {
	if !pt.Valid {
		return slot.TimeOfDay{}, slot.ErrInvalidTimeOfDay
	}
	totalMinutes := pt.Microseconds / 1_000_000 / 60
	return slot.NewTimeOfDay(int(totalMinutes/60), int(totalMinutes%60))
}

func TimeToPg(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
