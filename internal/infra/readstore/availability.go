package readstore

import (
	"context"

	"venuebook/internal/domain/event"
	"venuebook/internal/domain/slot"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

func (r *AvailabilityReadStore) DestinationExists(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM destinations WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check destination existence", err)
	}
	return exists, nil
}

func (r *AvailabilityReadStore) SlotsEffectiveOn(ctx context.Context, destinationID uuid.UUID, date slot.Date) ([]*slot.Slot, error) {
	const query = `
		SELECT id, destination_id, start_time, end_time, price_cents,
			effective_start_date, effective_end_date
		FROM slots
		WHERE destination_id = $1
			AND effective_start_date <= $2
			AND effective_end_date >= $2
		ORDER BY start_time, id`

	rows, err := r.db.Query(ctx, query, destinationID, pgconv.DateToPg(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list effective slots", err)
	}
	defer rows.Close()

	var slots []*slot.Slot
	for rows.Next() {
		s, err := scanSlotEntity(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate effective slots", err)
	}

	return slots, nil
}

func (r *AvailabilityReadStore) BookedSlotIDs(ctx context.Context, destinationID uuid.UUID, date slot.Date) ([]uuid.UUID, error) {
	const query = `
		SELECT bookable_id
		FROM bookings
		WHERE destination_id = $1
			AND bookable_type = 'slot'
			AND booked_date = $2
			AND status IN ('pending', 'confirmed')`

	rows, err := r.db.Query(ctx, query, destinationID, pgconv.DateToPg(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked slot ids", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked slot id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked slot ids", err)
	}

	return ids, nil
}

func (r *AvailabilityReadStore) EventByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	const query = `
		SELECT id, destination_id, name, starts_at, ends_at, price_cents, capacity
		FROM events
		WHERE id = $1`

	var (
		eventID       uuid.UUID
		destinationID uuid.UUID
		name          string
		startsAt      pgtype.Timestamptz
		endsAt        pgtype.Timestamptz
		priceCents    int64
		capacity      *int32
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&eventID, &destinationID, &name, &startsAt, &endsAt, &priceCents, &capacity,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get event", err)
	}

	return event.ReconstructEvent(eventID, destinationID, name, startsAt.Time, endsAt.Time, priceCents, capacity), nil
}

func (r *AvailabilityReadStore) ActiveEventBookingCount(ctx context.Context, eventID uuid.UUID) (int64, error) {
	const query = `
		SELECT count(*)
		FROM bookings
		WHERE bookable_id = $1
			AND bookable_type = 'event'
			AND status IN ('pending', 'confirmed')`

	var count int64
	if err := r.db.QueryRow(ctx, query, eventID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count event bookings", err)
	}
	return count, nil
}

type slotRow interface {
	Scan(dest ...any) error
}

func scanSlotEntity(row slotRow) (*slot.Slot, error) {
	var (
		id            uuid.UUID
		destinationID uuid.UUID
		startTime     pgtype.Time
		endTime       pgtype.Time
		priceCents    int64
		effStart      pgtype.Date
		effEnd        pgtype.Date
	)
	if err := row.Scan(&id, &destinationID, &startTime, &endTime, &priceCents, &effStart, &effEnd); err != nil {
		return nil, infra.WrapRepoErr("failed to scan slot", err)
	}

	start, err := pgconv.TimeOfDayFromPg(startTime)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot start time", err, infra.KindDBFailure)
	}
	end, err := pgconv.TimeOfDayFromPg(endTime)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot end time", err, infra.KindDBFailure)
	}
	from, err := pgconv.DateFromPg(effStart)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot effective start", err, infra.KindDBFailure)
	}
	until, err := pgconv.DateFromPg(effEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot effective end", err, infra.KindDBFailure)
	}
	effective, err := slot.NewDateRange(from, until)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot effective range", err, infra.KindDBFailure)
	}

	return slot.ReconstructSlot(id, destinationID, start, end, priceCents, effective), nil
}
