package commands

import (
	"context"
	"time"

	"venuebook/internal/domain/event"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEventValidation = errs.New("event validation failed")

type CreateEventInput struct {
	Name       string
	StartsAt   time.Time
	EndsAt     time.Time
	PriceCents int64
	Capacity   *int32
}

type EventCommands interface {
	Create(ctx context.Context, destinationID uuid.UUID, in CreateEventInput) (*queries.EventView, error)
}

type eventCommandsImpl struct {
	uow          shared.UnitOfWork
	eventQueries queries.EventQueries
}

func NewEventCommands(uow shared.UnitOfWork, eventQueries queries.EventQueries) EventCommands {
	return &eventCommandsImpl{uow: uow, eventQueries: eventQueries}
}

func (c *eventCommandsImpl) Create(ctx context.Context, destinationID uuid.UUID, in CreateEventInput) (*queries.EventView, error) {
	var eventID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reads().DestinationExists(ctx, destinationID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !exists {
			return ErrDestinationNotFound
		}

		e, err := event.NewEvent(destinationID, in.Name, in.StartsAt, in.EndsAt, in.PriceCents, in.Capacity)
		if err != nil {
			return errs.Mark(err, ErrEventValidation)
		}

		if err := tx.Events().Create(ctx, e); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrDestinationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		eventID = e.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.eventQueries.GetByID(ctx, eventID)
}
