package readstore

import (
	"context"

	"venuebook/internal/domain/slot"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

const slotViewColumns = `
	id, destination_id, start_time, end_time, price_cents,
	effective_start_date, effective_end_date, created_at, updated_at`

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	query := `SELECT ` + slotViewColumns + ` FROM slots WHERE id = $1`

	view, err := scanSlotView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *SlotReadStore) FindByDestinationID(ctx context.Context, destinationID uuid.UUID) ([]*queries.SlotView, error) {
	query := `SELECT ` + slotViewColumns + ` FROM slots WHERE destination_id = $1 ORDER BY start_time, id`

	rows, err := r.db.Query(ctx, query, destinationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	views := make([]*queries.SlotView, 0)
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slots", err)
	}

	return views, nil
}

// FindEntityByID loads the domain entity for the write side.
func (r *SlotReadStore) FindEntityByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error) {
	const query = `
		SELECT id, destination_id, start_time, end_time, price_cents,
			effective_start_date, effective_end_date
		FROM slots
		WHERE id = $1`

	return scanSlotEntity(r.db.QueryRow(ctx, query, id))
}

func scanSlotView(row slotRow) (*queries.SlotView, error) {
	var (
		view      queries.SlotView
		startTime pgtype.Time
		endTime   pgtype.Time
		effStart  pgtype.Date
		effEnd    pgtype.Date
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.DestinationID, &startTime, &endTime, &view.PriceCents,
		&effStart, &effEnd, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan slot view", err)
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

	view.StartTime = start.String()
	view.EndTime = end.String()
	view.EffectiveFrom = from.String()
	view.EffectiveUntil = until.String()
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time

	return &view, nil
}
