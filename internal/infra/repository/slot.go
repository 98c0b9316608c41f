package repository

import (
	"context"

	"venuebook/internal/domain/slot"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/pgconv"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.Slot) error {
	const query = `
		INSERT INTO slots (
			id, destination_id, start_time, end_time, price_cents,
			effective_start_date, effective_end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		s.ID(),
		s.DestinationID(),
		pgconv.TimeOfDayToPg(s.StartTime()),
		pgconv.TimeOfDayToPg(s.EndTime()),
		s.PriceCents(),
		pgconv.DateToPg(s.Effective().Start()),
		pgconv.DateToPg(s.Effective().End()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create slot", err)
	}

	return nil
}

func (r *SlotRepository) Update(ctx context.Context, s *slot.Slot) error {
	const query = `
		UPDATE slots
		SET start_time = $2,
			end_time = $3,
			price_cents = $4,
			effective_start_date = $5,
			effective_end_date = $6,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		s.ID(),
		pgconv.TimeOfDayToPg(s.StartTime()),
		pgconv.TimeOfDayToPg(s.EndTime()),
		s.PriceCents(),
		pgconv.DateToPg(s.Effective().Start()),
		pgconv.DateToPg(s.Effective().End()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}

	return nil
}
