package booking

import (
	"time"

	"venuebook/internal/domain/slot"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow     = errs.New("booking end must be after start")
	ErrInvalidAttendees  = errs.New("attendee count must be at least 1")
	ErrInvalidTransition = errs.New("invalid booking status transition")
)

// Booking reserves either a slot for one calendar date or a whole event.
// BookedDate is the civil date keying slot occupancy; for event bookings it is
// the event's local start date. Rows are append-only except status changes.
type Booking struct {
	id            uuid.UUID
	bookableID    uuid.UUID
	bookableType  BookableType
	userID        uuid.UUID
	destinationID uuid.UUID
	bookedDate    slot.Date
	startsAt      time.Time
	endsAt        time.Time
	attendees     int32
	total         Money
	status        Status
}

func newBooking(
	bookableID uuid.UUID,
	bookableType BookableType,
	userID uuid.UUID,
	destinationID uuid.UUID,
	bookedDate slot.Date,
	startsAt, endsAt time.Time,
	attendees int32,
	total Money,
	status Status,
) (*Booking, error) {
	if !endsAt.After(startsAt) {
		return nil, ErrInvalidWindow
	}
	if attendees < 1 {
		return nil, ErrInvalidAttendees
	}
	return &Booking{
		id:            uuid.New(),
		bookableID:    bookableID,
		bookableType:  bookableType,
		userID:        userID,
		destinationID: destinationID,
		bookedDate:    bookedDate,
		startsAt:      startsAt,
		endsAt:        endsAt,
		attendees:     attendees,
		total:         total,
		status:        status,
	}, nil
}

func ReconstructBooking(
	id, bookableID uuid.UUID,
	bookableType BookableType,
	userID, destinationID uuid.UUID,
	bookedDate slot.Date,
	startsAt, endsAt time.Time,
	attendees int32,
	total Money,
	status Status,
) *Booking {
	return &Booking{
		id:            id,
		bookableID:    bookableID,
		bookableType:  bookableType,
		userID:        userID,
		destinationID: destinationID,
		bookedDate:    bookedDate,
		startsAt:      startsAt,
		endsAt:        endsAt,
		attendees:     attendees,
		total:         total,
		status:        status,
	}
}

func (b *Booking) ID() uuid.UUID {
	return b.id
}

func (b *Booking) BookableID() uuid.UUID {
	return b.bookableID
}

func (b *Booking) BookableType() BookableType {
	return b.bookableType
}

func (b *Booking) UserID() uuid.UUID {
	return b.userID
}

func (b *Booking) DestinationID() uuid.UUID {
	return b.destinationID
}

func (b *Booking) BookedDate() slot.Date {
	return b.bookedDate
}

func (b *Booking) StartsAt() time.Time {
	return b.startsAt
}

func (b *Booking) EndsAt() time.Time {
	return b.endsAt
}

func (b *Booking) Attendees() int32 {
	return b.attendees
}

func (b *Booking) Total() Money {
	return b.total
}

func (b *Booking) Status() Status {
	return b.status
}

// pending → confirmed
func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	return nil
}

// pending|confirmed → cancelled
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	return nil
}
