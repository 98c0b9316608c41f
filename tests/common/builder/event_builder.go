package builder

import (
	"time"

	"venuebook/internal/domain/event"

	"github.com/google/uuid"
)

type EventBuilder struct {
	destinationID uuid.UUID
	name          string
	startsAt      time.Time
	endsAt        time.Time
	priceCents    int64
	capacity      *int32
}

func NewEventBuilder() *EventBuilder {
	startsAt := time.Date(2024, 6, 20, 18, 0, 0, 0, time.UTC)
	return &EventBuilder{
		destinationID: uuid.New(),
		name:          "Summer Workshop",
		startsAt:      startsAt,
		endsAt:        startsAt.Add(2 * time.Hour),
		priceCents:    120000,
	}
}

func (b *EventBuilder) WithDestinationID(id uuid.UUID) *EventBuilder {
	b.destinationID = id
	return b
}

func (b *EventBuilder) WithName(name string) *EventBuilder {
	b.name = name
	return b
}

func (b *EventBuilder) WithWindow(startsAt, endsAt time.Time) *EventBuilder {
	b.startsAt = startsAt
	b.endsAt = endsAt
	return b
}

func (b *EventBuilder) WithPriceCents(cents int64) *EventBuilder {
	b.priceCents = cents
	return b
}

func (b *EventBuilder) WithCapacity(capacity int32) *EventBuilder {
	b.capacity = &capacity
	return b
}

func (b *EventBuilder) WithUnlimitedCapacity() *EventBuilder {
	b.capacity = nil
	return b
}

func (b *EventBuilder) BuildDomain() (*event.Event, error) {
	return event.NewEvent(b.destinationID, b.name, b.startsAt, b.endsAt, b.priceCents, b.capacity)
}

func (b *EventBuilder) MustBuildDomain() *event.Event {
	e, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return e
}
