package repository

import (
	"context"

	"venuebook/internal/domain/event"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventRepository struct {
	db db.DBTX
}

func NewEventRepository(dbtx db.DBTX) *EventRepository {
	return &EventRepository{db: dbtx}
}

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	const query = `
		INSERT INTO events (
			id, destination_id, name, starts_at, ends_at, price_cents, capacity
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		e.ID(),
		e.DestinationID(),
		e.Name(),
		pgconv.TimeToPg(e.StartsAt()),
		pgconv.TimeToPg(e.EndsAt()),
		e.PriceCents(),
		e.Capacity(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create event", err)
	}

	return nil
}

// LockByID takes a row lock so the caller's seat count stays stable
// until the transaction commits.
func (r *EventRepository) LockByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	const query = `
		SELECT id, destination_id, name, starts_at, ends_at, price_cents, capacity
		FROM events
		WHERE id = $1
		FOR UPDATE`

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
		return nil, infra.WrapRepoErr("failed to lock event", err)
	}

	return event.ReconstructEvent(eventID, destinationID, name, startsAt.Time, endsAt.Time, priceCents, capacity), nil
}
