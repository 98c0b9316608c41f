package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/slot"
	"venuebook/internal/infra"
	"venuebook/internal/metrics"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound            = errs.New("slot not found")
	ErrEventNotFound           = errs.New("event not found")
	ErrInvalidBookable         = errs.New("invalid bookable reference")
	ErrSlotAlreadyBooked       = errs.New("slot no longer available for this date")
	ErrEventSoldOut            = errs.New("event has no remaining capacity")
	ErrBookingValidation       = errs.New("booking validation failed")
	ErrIdempotencyKeyReused    = errs.New("idempotency key reused with different parameters")
	ErrIdempotencyInProgress   = errs.New("booking request is already being processed")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const idempotencyKeyTTL = 24 * time.Hour

type CreateBookingInput struct {
	BookableType booking.BookableType `json:"bookable_type"`
	BookableID   uuid.UUID            `json:"bookable_id"`
	Date         slot.Date            `json:"-"`
	DateString   string               `json:"date,omitempty"`
	Attendees    int32                `json:"attendees"`
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	Create(ctx context.Context, userID uuid.UUID, idempotencyKey uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
	cache          queries.AvailabilityCache
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
	cache queries.AvailabilityCache,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		factory:        factory,
		bookingQueries: bookingQueries,
		cache:          cache,
		clock:          clock,
	}
}

// Create inserts exactly one booking per idempotency key. Availability is not
// re-read before the insert: for slots the occupancy index decides, for events
// the capacity count runs under a row lock inside the same transaction.
func (c *bookingCommandsImpl) Create(
	ctx context.Context,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
	in CreateBookingInput,
) (*CreateBookingResult, error) {
	if !in.BookableType.IsValid() {
		return nil, ErrInvalidBookable
	}

	requestHash := calculateRequestHash(userID, in)
	expiresAt := c.clock.Now().Add(idempotencyKeyTTL)

	var (
		created  *booking.Booking
		replayID *uuid.UUID
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, idempotencyKey, userID, "POST /api/bookings", requestHash, expiresAt)
		if err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}

		if !inserted {
			id, replayErr := c.resolveReplay(ctx, tx, idempotencyKey, userID, requestHash)
			if replayErr != nil {
				return replayErr
			}
			replayID = id
			return nil
		}

		b, err := c.buildBooking(ctx, tx, userID, in)
		if err != nil {
			return err
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSlotAlreadyBooked
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrInvalidBookable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		responseHash := calculateIDHash(b.ID())
		if err := tx.Idempotency().MarkCompleted(ctx, idempotencyKey, userID, responseHash, b.ID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		created = b
		return nil
	})
	if err != nil {
		metrics.IncBookingAttempt(bookingOutcome(err))
		return nil, err
	}

	if replayID != nil {
		view, err := c.bookingQueries.GetByIDSystem(ctx, *replayID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return &CreateBookingResult{Booking: view, IsReplayed: true}, nil
	}

	c.invalidateAvailability(ctx, created)
	metrics.IncBookingAttempt(metrics.OutcomeCreated)

	// Read-after-write: the view joins the destination name
	view, err := c.bookingQueries.GetByIDSystem(ctx, created.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

func (c *bookingCommandsImpl) resolveReplay(
	ctx context.Context,
	tx shared.Tx,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
) (*uuid.UUID, error) {
	record, err := tx.Idempotency().Get(ctx, idempotencyKey, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if record.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	switch record.Status {
	case shared.IdempotencyStatusCompleted:
		if record.ResultBookingID == nil {
			return nil, errs.New("completed idempotency record missing booking id")
		}
		return record.ResultBookingID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency record status")
	}
}

func (c *bookingCommandsImpl) buildBooking(
	ctx context.Context,
	tx shared.Tx,
	userID uuid.UUID,
	in CreateBookingInput,
) (*booking.Booking, error) {
	switch in.BookableType {
	case booking.BookableSlot:
		s, err := tx.Reads().SlotByID(ctx, in.BookableID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrSlotNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		b, err := c.factory.NewSlotBooking(s, in.Date, userID, in.Attendees)
		if err != nil {
			return nil, errs.Mark(err, ErrBookingValidation)
		}
		return b, nil

	case booking.BookableEvent:
		e, err := tx.Events().LockByID(ctx, in.BookableID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrEventNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !e.Unlimited() {
			count, err := tx.Reads().ActiveEventBookingCount(ctx, e.ID())
			if err != nil {
				return nil, errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if !e.HasRemainingCapacity(count) {
				return nil, ErrEventSoldOut
			}
		}

		b, err := c.factory.NewEventBooking(e, userID, in.Attendees)
		if err != nil {
			return nil, errs.Mark(err, ErrBookingValidation)
		}
		return b, nil

	default:
		return nil, ErrInvalidBookable
	}
}

// Cache staleness only ever shows a booked slot as free; the insert constraint
// still rejects the double booking. Invalidation is best effort.
func (c *bookingCommandsImpl) invalidateAvailability(ctx context.Context, b *booking.Booking) {
	if b.BookableType() != booking.BookableSlot {
		return
	}
	if err := c.cache.InvalidateSlots(ctx, b.DestinationID(), b.BookedDate()); err != nil {
		slog.Warn("availability cache invalidation failed",
			"destination_id", b.DestinationID(),
			"date", b.BookedDate().String(),
			"error", err.Error())
	}
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeCreated
	case errors.Is(err, ErrSlotAlreadyBooked):
		return metrics.OutcomeConflict
	case errors.Is(err, ErrEventSoldOut):
		return metrics.OutcomeSoldOut
	case errors.Is(err, ErrBookingValidation):
		return metrics.OutcomeValidation
	default:
		return metrics.OutcomeError
	}
}

func calculateRequestHash(userID uuid.UUID, in CreateBookingInput) string {
	in.DateString = ""
	if !in.Date.IsZero() {
		in.DateString = in.Date.String()
	}
	payload := struct {
		UserID uuid.UUID          `json:"user_id"`
		Input  CreateBookingInput `json:"input"`
	}{UserID: userID, Input: in}

	data, _ := json.Marshal(payload)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
