package shared

import (
	"context"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/event"
	"venuebook/internal/domain/slot"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Slots() SlotRepository
	Events() EventRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
}

type BookingRepository interface {
	// Create inserts one booking row. A uniqueness violation on the slot/date
	// occupancy index comes back as a Conflict repository error; that signal,
	// not any prior availability read, decides whether the slot was taken.
	Create(ctx context.Context, b *booking.Booking) error
}

type SlotRepository interface {
	Create(ctx context.Context, s *slot.Slot) error
	Update(ctx context.Context, s *slot.Slot) error
}

type EventRepository interface {
	Create(ctx context.Context, e *event.Event) error
	// LockByID loads the event under FOR UPDATE so a capacity count taken
	// afterwards cannot race a concurrent insert.
	LockByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
}

type IdempotencyRepository interface {
	// TryInsert claims the key with ON CONFLICT DO NOTHING semantics.
	// inserted=false means another request already holds it.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (inserted bool, err error)
	Get(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, key, userID uuid.UUID, responseHash string, bookingID uuid.UUID) error
}

type CommandReads interface {
	SlotByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error)
	DestinationExists(ctx context.Context, id uuid.UUID) (bool, error)
	ActiveEventBookingCount(ctx context.Context, eventID uuid.UUID) (int64, error)
}
