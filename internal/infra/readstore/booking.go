package readstore

import (
	"context"
	"fmt"

	"venuebook/internal/domain/slot"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.bookable_id, b.bookable_type, b.destination_id, d.name,
			b.user_id, b.booked_date, b.starts_at, b.ends_at, b.attendees,
			b.total_cents, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN destinations d ON d.id = b.destination_id
		WHERE b.id = $1`

	var (
		view       queries.BookingView
		bookedDate pgtype.Date
		startsAt   pgtype.Timestamptz
		endsAt     pgtype.Timestamptz
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.BookableID, &view.BookableType, &view.DestinationID, &view.DestinationName,
		&view.UserID, &bookedDate, &startsAt, &endsAt, &view.Attendees,
		&view.TotalCents, &view.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}

	date, err := pgconv.DateFromPg(bookedDate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booked date", err, infra.KindDBFailure)
	}
	view.BookedDate = date.String()
	view.StartsAt = startsAt.Time
	view.EndsAt = endsAt.Time
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time

	return &view, nil
}

const bookingListColumns = `
	b.id, b.bookable_type, b.destination_id, d.name, b.booked_date,
	b.starts_at, b.ends_at, b.attendees, b.total_cents, b.status, b.created_at`

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*queries.BookingListItem, error) {
	query := `SELECT ` + bookingListColumns + `
		FROM bookings b
		JOIN destinations d ON d.id = b.destination_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	defer rows.Close()

	return collectBookingItems(rows)
}

func (r *BookingReadStore) FindByDestinationID(ctx context.Context, destinationID uuid.UUID, from, until *slot.Date) ([]*queries.BookingListItem, error) {
	query := `SELECT ` + bookingListColumns + `
		FROM bookings b
		JOIN destinations d ON d.id = b.destination_id
		WHERE b.destination_id = $1`
	args := []any{destinationID}

	if from != nil {
		args = append(args, pgconv.DateToPg(*from))
		query += fmt.Sprintf(" AND b.booked_date >= $%d", len(args))
	}
	if until != nil {
		args = append(args, pgconv.DateToPg(*until))
		query += fmt.Sprintf(" AND b.booked_date <= $%d", len(args))
	}
	query += " ORDER BY b.booked_date, b.starts_at, b.id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list destination bookings", err)
	}
	defer rows.Close()

	return collectBookingItems(rows)
}

type bookingRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func collectBookingItems(rows bookingRows) ([]*queries.BookingListItem, error) {
	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item       queries.BookingListItem
			bookedDate pgtype.Date
			startsAt   pgtype.Timestamptz
			endsAt     pgtype.Timestamptz
			createdAt  pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID, &item.BookableType, &item.DestinationID, &item.DestinationName, &bookedDate,
			&startsAt, &endsAt, &item.Attendees, &item.TotalCents, &item.Status, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking item", err)
		}

		date, err := pgconv.DateFromPg(bookedDate)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booked date", err, infra.KindDBFailure)
		}
		item.BookedDate = date.String()
		item.StartsAt = startsAt.Time
		item.EndsAt = endsAt.Time
		item.CreatedAt = createdAt.Time

		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}

	return items, nil
}
