package repository

import (
	"context"

	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgconv"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// Create relies on the partial unique index over (bookable_id, booked_date)
// for non-cancelled slot bookings; a violation comes back as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, bookable_id, bookable_type, user_id, destination_id,
			booked_date, starts_at, ends_at, attendees, total_cents, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		b.ID(),
		b.BookableID(),
		b.BookableType().String(),
		b.UserID(),
		b.DestinationID(),
		pgconv.DateToPg(b.BookedDate()),
		pgconv.TimeToPg(b.StartsAt()),
		pgconv.TimeToPg(b.EndsAt()),
		b.Attendees(),
		b.Total().Cents(),
		b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	return nil
}
