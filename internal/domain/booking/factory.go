package booking

import (
	"time"

	"venuebook/internal/domain/event"
	"venuebook/internal/domain/slot"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDateOutsideEffectiveRange = errs.New("date is outside the slot's effective range")
	ErrDateInPast                = errs.New("booking date must not be in the past")
	ErrEventAlreadyStarted       = errs.New("event has already started")
)

type Services struct {
	Clock    clock.Clock
	Location *time.Location
}

type Factory struct {
	services *Services
}

func NewFactory(services *Services) *Factory {
	return &Factory{services: services}
}

// NewSlotBooking reserves one slot occurrence on the given calendar date. The
// absolute window comes from composing the slot's times-of-day with the date
// in the configured location.
func (f *Factory) NewSlotBooking(s *slot.Slot, date slot.Date, userID uuid.UUID, attendees int32) (*Booking, error) {
	if !s.EffectiveOn(date) {
		return nil, ErrDateOutsideEffectiveRange
	}

	today := slot.DateOf(f.services.Clock.Now(), f.services.Location)
	if date.Before(today) {
		return nil, ErrDateInPast
	}

	startsAt, endsAt := s.WindowOn(date, f.services.Location)

	price, err := NewMoney(s.PriceCents())
	if err != nil {
		return nil, err
	}

	return newBooking(
		s.ID(),
		BookableSlot,
		userID,
		s.DestinationID(),
		date,
		startsAt, endsAt,
		attendees,
		price.MulCount(attendees),
		StatusConfirmed,
	)
}

// NewEventBooking reserves seats on a whole event occurrence. Capacity is not
// checked here; the transaction that inserts the booking counts seats under a
// row lock on the event.
func (f *Factory) NewEventBooking(e *event.Event, userID uuid.UUID, attendees int32) (*Booking, error) {
	if e.StartedBy(f.services.Clock.Now()) {
		return nil, ErrEventAlreadyStarted
	}

	price, err := NewMoney(e.PriceCents())
	if err != nil {
		return nil, err
	}

	return newBooking(
		e.ID(),
		BookableEvent,
		userID,
		e.DestinationID(),
		slot.DateOf(e.StartsAt(), f.services.Location),
		e.StartsAt(), e.EndsAt(),
		attendees,
		price.MulCount(attendees),
		StatusConfirmed,
	)
}
