package queries

import (
	"context"
	"time"

	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"

	"github.com/google/uuid"
)

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	FindByDestinationID(ctx context.Context, destinationID uuid.UUID, startingAfter time.Time) ([]*EventView, error)
}

type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	// ListUpcomingByDestination returns events that have not started yet.
	ListUpcomingByDestination(ctx context.Context, destinationID uuid.UUID) ([]*EventView, error)
}

type eventQueriesImpl struct {
	reads EventReadStore
	clock clock.Clock
}

func NewEventQueries(reads EventReadStore, clock clock.Clock) EventQueries {
	return &eventQueriesImpl{reads: reads, clock: clock}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *eventQueriesImpl) ListUpcomingByDestination(ctx context.Context, destinationID uuid.UUID) ([]*EventView, error) {
	return q.reads.FindByDestinationID(ctx, destinationID, q.clock.Now())
}
