package queries

import (
	"context"
	"log/slog"

	"venuebook/internal/domain/event"
	"venuebook/internal/domain/slot"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDestinationNotFound = errs.New("destination not found")
	ErrEventNotFound       = errs.New("event not found")
	// ErrAvailabilityFetchFailed surfaces store failures to the caller. An
	// empty slot list always means "no slots", never a swallowed query error.
	ErrAvailabilityFetchFailed = errs.New("availability fetch failed")
)

type AvailabilityReadStore interface {
	DestinationExists(ctx context.Context, id uuid.UUID) (bool, error)
	// SlotsEffectiveOn returns the slots whose effective range contains date,
	// in store order.
	SlotsEffectiveOn(ctx context.Context, destinationID uuid.UUID, date slot.Date) ([]*slot.Slot, error)
	// BookedSlotIDs returns the slot ids holding a pending or confirmed
	// booking for date at the destination.
	BookedSlotIDs(ctx context.Context, destinationID uuid.UUID, date slot.Date) ([]uuid.UUID, error)
	EventByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	ActiveEventBookingCount(ctx context.Context, eventID uuid.UUID) (int64, error)
}

// AvailabilityCache is a best-effort read-through cache. Misses and cache
// errors fall back to the read store.
type AvailabilityCache interface {
	GetSlots(ctx context.Context, destinationID uuid.UUID, date slot.Date) ([]SlotAvailabilityView, bool, error)
	SetSlots(ctx context.Context, destinationID uuid.UUID, date slot.Date, views []SlotAvailabilityView) error
	InvalidateSlots(ctx context.Context, destinationID uuid.UUID, date slot.Date) error
}

type AvailabilityQueries interface {
	// SlotAvailability annotates every slot effective on date with whether a
	// pending-or-confirmed booking already occupies that slot/date pair. The
	// result is advisory; booking inserts re-check via the store constraint.
	SlotAvailability(ctx context.Context, destinationID uuid.UUID, date slot.Date) ([]SlotAvailabilityView, error)
	EventAvailability(ctx context.Context, eventID uuid.UUID) (*EventAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	reads AvailabilityReadStore
	cache AvailabilityCache
}

func NewAvailabilityQueries(reads AvailabilityReadStore, cache AvailabilityCache) AvailabilityQueries {
	return &availabilityQueriesImpl{reads: reads, cache: cache}
}

func (q *availabilityQueriesImpl) SlotAvailability(ctx context.Context, destinationID uuid.UUID, date slot.Date) ([]SlotAvailabilityView, error) {
	exists, err := q.reads.DestinationExists(ctx, destinationID)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityFetchFailed)
	}
	if !exists {
		return nil, ErrDestinationNotFound
	}

	if views, hit, cacheErr := q.cache.GetSlots(ctx, destinationID, date); cacheErr != nil {
		slog.Warn("availability cache read failed", "destination_id", destinationID, "error", cacheErr.Error())
	} else if hit {
		return views, nil
	}

	slots, err := q.reads.SlotsEffectiveOn(ctx, destinationID, date)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityFetchFailed)
	}

	bookedIDs, err := q.reads.BookedSlotIDs(ctx, destinationID, date)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityFetchFailed)
	}

	booked := make(map[uuid.UUID]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	views := make([]SlotAvailabilityView, 0, len(slots))
	for _, s := range slots {
		_, taken := booked[s.ID()]
		views = append(views, SlotAvailabilityView{
			SlotID:         s.ID(),
			DestinationID:  s.DestinationID(),
			StartTime:      s.StartTime().String(),
			EndTime:        s.EndTime().String(),
			PriceCents:     s.PriceCents(),
			EffectiveFrom:  s.Effective().Start().String(),
			EffectiveUntil: s.Effective().End().String(),
			IsAvailable:    !taken,
		})
	}

	if cacheErr := q.cache.SetSlots(ctx, destinationID, date, views); cacheErr != nil {
		slog.Warn("availability cache write failed", "destination_id", destinationID, "error", cacheErr.Error())
	}

	return views, nil
}

func (q *availabilityQueriesImpl) EventAvailability(ctx context.Context, eventID uuid.UUID) (*EventAvailabilityView, error) {
	e, err := q.reads.EventByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errs.Mark(err, ErrAvailabilityFetchFailed)
	}

	view := &EventAvailabilityView{
		EventID:  e.ID(),
		Capacity: e.Capacity(),
	}

	if e.Unlimited() {
		view.IsAvailable = true
		return view, nil
	}

	count, err := q.reads.ActiveEventBookingCount(ctx, eventID)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityFetchFailed)
	}

	view.ActiveBookings = count
	view.IsAvailable = e.HasRemainingCapacity(count)

	remaining := int32(0)
	if left := int64(*e.Capacity()) - count; left > 0 {
		remaining = int32(left)
	}
	view.Remaining = &remaining

	return view, nil
}
