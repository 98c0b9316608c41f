package queries

import (
	"context"

	"venuebook/internal/domain/slot"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookingForbidden = errs.New("booking belongs to another user")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*BookingListItem, error)
	// FindByDestinationID optionally narrows to an inclusive booked-date range.
	FindByDestinationID(ctx context.Context, destinationID uuid.UUID, from, until *slot.Date) ([]*BookingListItem, error)
}

type BookingQueries interface {
	// GetByID enforces ownership: customers only see their own bookings,
	// managers see any.
	GetByID(ctx context.Context, actorID uuid.UUID, isManager bool, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem bypasses ownership for internal reads (idempotent replay).
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*BookingListItem, error)
	ListByDestination(ctx context.Context, destinationID uuid.UUID, from, until *slot.Date) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	reads BookingReadStore
}

func NewBookingQueries(reads BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{reads: reads}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, isManager bool, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isManager && view.UserID != actorID {
		return nil, ErrBookingForbidden
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*BookingListItem, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.reads.FindByUserID(ctx, userID, int32(limit), 0)
}

func (q *bookingQueriesImpl) ListByDestination(ctx context.Context, destinationID uuid.UUID, from, until *slot.Date) ([]*BookingListItem, error) {
	return q.reads.FindByDestinationID(ctx, destinationID, from, until)
}
