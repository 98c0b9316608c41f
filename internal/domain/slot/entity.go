package slot

import (
	"time"

	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeOrder = errs.New("start time must be before end time")
	ErrNegativePrice    = errs.New("price must not be negative")
)

// Slot is a recurring weekly availability window for a destination. It is
// bookable on any single date inside its effective range; edits mutate the
// definition in place, slots are never versioned.
type Slot struct {
	id            uuid.UUID
	destinationID uuid.UUID
	startTime     TimeOfDay
	endTime       TimeOfDay
	priceCents    int64
	effective     DateRange
}

func NewSlot(destinationID uuid.UUID, startTime, endTime TimeOfDay, priceCents int64, effective DateRange) (*Slot, error) {
	s := &Slot{
		id:            uuid.New(),
		destinationID: destinationID,
	}
	if err := s.apply(startTime, endTime, priceCents, effective); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructSlot(id, destinationID uuid.UUID, startTime, endTime TimeOfDay, priceCents int64, effective DateRange) *Slot {
	return &Slot{
		id:            id,
		destinationID: destinationID,
		startTime:     startTime,
		endTime:       endTime,
		priceCents:    priceCents,
		effective:     effective,
	}
}

func (s *Slot) apply(startTime, endTime TimeOfDay, priceCents int64, effective DateRange) error {
	if !startTime.Before(endTime) {
		return ErrInvalidTimeOrder
	}
	if priceCents < 0 {
		return ErrNegativePrice
	}
	s.startTime = startTime
	s.endTime = endTime
	s.priceCents = priceCents
	s.effective = effective
	return nil
}

// Update edits the definition in place under the same validation as creation.
func (s *Slot) Update(startTime, endTime TimeOfDay, priceCents int64, effective DateRange) error {
	return s.apply(startTime, endTime, priceCents, effective)
}

func (s *Slot) ID() uuid.UUID {
	return s.id
}

func (s *Slot) DestinationID() uuid.UUID {
	return s.destinationID
}

func (s *Slot) StartTime() TimeOfDay {
	return s.startTime
}

func (s *Slot) EndTime() TimeOfDay {
	return s.endTime
}

func (s *Slot) PriceCents() int64 {
	return s.priceCents
}

func (s *Slot) Effective() DateRange {
	return s.effective
}

func (s *Slot) EffectiveOn(d Date) bool {
	return s.effective.Contains(d)
}

// WindowOn composes the slot's times-of-day with a calendar date into the
// absolute booking window. Pure; same inputs always yield the same window.
func (s *Slot) WindowOn(d Date, loc *time.Location) (start, end time.Time) {
	return d.At(s.startTime, loc), d.At(s.endTime, loc)
}
