package builder

import (
	"time"

	"venuebook/internal/domain/slot"

	"github.com/google/uuid"
)

// SlotBuilder builds a 09:00-10:00 slot effective through 2024, matching the
// defaults most availability tests start from.
type SlotBuilder struct {
	destinationID  uuid.UUID
	startHour      int
	startMinute    int
	endHour        int
	endMinute      int
	priceCents     int64
	effectiveStart string
	effectiveEnd   string
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		destinationID:  uuid.New(),
		startHour:      9,
		startMinute:    0,
		endHour:        10,
		endMinute:      0,
		priceCents:     50000,
		effectiveStart: "2024-01-01",
		effectiveEnd:   "2024-12-31",
	}
}

func (b *SlotBuilder) WithDestinationID(id uuid.UUID) *SlotBuilder {
	b.destinationID = id
	return b
}

func (b *SlotBuilder) WithStartTime(hour, minute int) *SlotBuilder {
	b.startHour = hour
	b.startMinute = minute
	return b
}

func (b *SlotBuilder) WithEndTime(hour, minute int) *SlotBuilder {
	b.endHour = hour
	b.endMinute = minute
	return b
}

func (b *SlotBuilder) WithPriceCents(cents int64) *SlotBuilder {
	b.priceCents = cents
	return b
}

func (b *SlotBuilder) WithEffectiveRange(start, end string) *SlotBuilder {
	b.effectiveStart = start
	b.effectiveEnd = end
	return b
}

func (b *SlotBuilder) BuildDomain() (*slot.Slot, error) {
	startTime, err := slot.NewTimeOfDay(b.startHour, b.startMinute)
	if err != nil {
		return nil, err
	}
	endTime, err := slot.NewTimeOfDay(b.endHour, b.endMinute)
	if err != nil {
		return nil, err
	}
	rangeStart, err := slot.ParseDate(b.effectiveStart)
	if err != nil {
		return nil, err
	}
	rangeEnd, err := slot.ParseDate(b.effectiveEnd)
	if err != nil {
		return nil, err
	}
	effective, err := slot.NewDateRange(rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	return slot.NewSlot(b.destinationID, startTime, endTime, b.priceCents, effective)
}

// MustBuildDomain is for arranging fixtures where the inputs are known valid.
func (b *SlotBuilder) MustBuildDomain() *slot.Slot {
	s, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return s
}

func MustDate(s string) slot.Date {
	d, err := slot.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func MustTimeOfDay(hour, minute int) slot.TimeOfDay {
	t, err := slot.NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

func MustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
