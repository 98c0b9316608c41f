package readstore

import (
	"context"
	"time"

	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(dbtx db.DBTX) *EventReadStore {
	return &EventReadStore{db: dbtx}
}

const eventViewColumns = `
	id, destination_id, name, starts_at, ends_at, price_cents, capacity,
	created_at, updated_at`

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	query := `SELECT ` + eventViewColumns + ` FROM events WHERE id = $1`

	return scanEventView(r.db.QueryRow(ctx, query, id))
}

func (r *EventReadStore) FindByDestinationID(ctx context.Context, destinationID uuid.UUID, startingAfter time.Time) ([]*queries.EventView, error) {
	query := `SELECT ` + eventViewColumns + `
		FROM events
		WHERE destination_id = $1 AND starts_at > $2
		ORDER BY starts_at, id`

	rows, err := r.db.Query(ctx, query, destinationID, pgconv.TimeToPg(startingAfter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	defer rows.Close()

	views := make([]*queries.EventView, 0)
	for rows.Next() {
		view, err := scanEventView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate events", err)
	}

	return views, nil
}

func scanEventView(row slotRow) (*queries.EventView, error) {
	var (
		view      queries.EventView
		startsAt  pgtype.Timestamptz
		endsAt    pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.DestinationID, &view.Name, &startsAt, &endsAt,
		&view.PriceCents, &view.Capacity, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan event view", err)
	}

	view.StartsAt = startsAt.Time
	view.EndsAt = endsAt.Time
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time

	return &view, nil
}
