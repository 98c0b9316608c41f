package queries

import (
	"context"

	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSlotNotFound = errs.New("slot not found")

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	FindByDestinationID(ctx context.Context, destinationID uuid.UUID) ([]*SlotView, error)
}

type SlotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	ListByDestination(ctx context.Context, destinationID uuid.UUID) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	reads SlotReadStore
}

func NewSlotQueries(reads SlotReadStore) SlotQueries {
	return &slotQueriesImpl{reads: reads}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *slotQueriesImpl) ListByDestination(ctx context.Context, destinationID uuid.UUID) ([]*SlotView, error) {
	return q.reads.FindByDestinationID(ctx, destinationID)
}
