package commands

import (
	"context"

	"venuebook/internal/domain/slot"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDestinationNotFound = errs.New("destination not found")
	ErrSlotValidation      = errs.New("slot validation failed")
)

type CreateSlotInput struct {
	StartTime  slot.TimeOfDay
	EndTime    slot.TimeOfDay
	PriceCents int64
	Effective  slot.DateRange
}

type SlotCommands interface {
	Create(ctx context.Context, destinationID uuid.UUID, in CreateSlotInput) (*queries.SlotView, error)
	// Update mutates the definition in place; slots are not versioned.
	Update(ctx context.Context, slotID uuid.UUID, in CreateSlotInput) (*queries.SlotView, error)
}

type slotCommandsImpl struct {
	uow         shared.UnitOfWork
	slotQueries queries.SlotQueries
}

func NewSlotCommands(uow shared.UnitOfWork, slotQueries queries.SlotQueries) SlotCommands {
	return &slotCommandsImpl{uow: uow, slotQueries: slotQueries}
}

func (c *slotCommandsImpl) Create(ctx context.Context, destinationID uuid.UUID, in CreateSlotInput) (*queries.SlotView, error) {
	var slotID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reads().DestinationExists(ctx, destinationID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !exists {
			return ErrDestinationNotFound
		}

		s, err := slot.NewSlot(destinationID, in.StartTime, in.EndTime, in.PriceCents, in.Effective)
		if err != nil {
			return errs.Mark(err, ErrSlotValidation)
		}

		if err := tx.Slots().Create(ctx, s); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrDestinationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		slotID = s.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.slotQueries.GetByID(ctx, slotID)
}

func (c *slotCommandsImpl) Update(ctx context.Context, slotID uuid.UUID, in CreateSlotInput) (*queries.SlotView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Reads().SlotByID(ctx, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := s.Update(in.StartTime, in.EndTime, in.PriceCents, in.Effective); err != nil {
			return errs.Mark(err, ErrSlotValidation)
		}

		if err := tx.Slots().Update(ctx, s); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.slotQueries.GetByID(ctx, slotID)
}
