package event

import (
	"strings"
	"time"

	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNameRequired     = errs.New("event name is required")
	ErrInvalidTimeOrder = errs.New("event end must be after start")
	ErrNegativePrice    = errs.New("price must not be negative")
	ErrInvalidCapacity  = errs.New("capacity must be at least 1")
)

// Event is a one-off bookable occurrence at a destination. A nil capacity
// means unlimited attendance.
type Event struct {
	id            uuid.UUID
	destinationID uuid.UUID
	name          string
	startsAt      time.Time
	endsAt        time.Time
	priceCents    int64
	capacity      *int32
}

func NewEvent(destinationID uuid.UUID, name string, startsAt, endsAt time.Time, priceCents int64, capacity *int32) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !endsAt.After(startsAt) {
		return nil, ErrInvalidTimeOrder
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if capacity != nil && *capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Event{
		id:            uuid.New(),
		destinationID: destinationID,
		name:          name,
		startsAt:      startsAt,
		endsAt:        endsAt,
		priceCents:    priceCents,
		capacity:      capacity,
	}, nil
}

func ReconstructEvent(id, destinationID uuid.UUID, name string, startsAt, endsAt time.Time, priceCents int64, capacity *int32) *Event {
	return &Event{
		id:            id,
		destinationID: destinationID,
		name:          name,
		startsAt:      startsAt,
		endsAt:        endsAt,
		priceCents:    priceCents,
		capacity:      capacity,
	}
}

func (e *Event) ID() uuid.UUID {
	return e.id
}

func (e *Event) DestinationID() uuid.UUID {
	return e.destinationID
}

func (e *Event) Name() string {
	return e.name
}

func (e *Event) StartsAt() time.Time {
	return e.startsAt
}

func (e *Event) EndsAt() time.Time {
	return e.endsAt
}

func (e *Event) PriceCents() int64 {
	return e.priceCents
}

func (e *Event) Capacity() *int32 {
	return e.capacity
}

func (e *Event) Unlimited() bool {
	return e.capacity == nil
}

// HasRemainingCapacity reports whether one more booking fits given the count
// of bookings currently holding seats.
func (e *Event) HasRemainingCapacity(activeBookings int64) bool {
	if e.capacity == nil {
		return true
	}
	return activeBookings < int64(*e.capacity)
}

func (e *Event) StartedBy(t time.Time) bool {
	return !t.Before(e.startsAt)
}
