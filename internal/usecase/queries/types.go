package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side). Times of day and calendar dates are plain
// strings ("15:04" / "2006-01-02") so the views marshal cleanly for caching.

type SlotAvailabilityView struct {
	SlotID         uuid.UUID `json:"slot_id"`
	DestinationID  uuid.UUID `json:"destination_id"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	PriceCents     int64     `json:"price_cents"`
	EffectiveFrom  string    `json:"effective_from"`
	EffectiveUntil string    `json:"effective_until"`
	IsAvailable    bool      `json:"is_available"`
}

type EventAvailabilityView struct {
	EventID        uuid.UUID `json:"event_id"`
	Capacity       *int32    `json:"capacity,omitempty"`
	ActiveBookings int64     `json:"active_bookings"`
	Remaining      *int32    `json:"remaining,omitempty"`
	IsAvailable    bool      `json:"is_available"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	BookableID      uuid.UUID `json:"bookable_id"`
	BookableType    string    `json:"bookable_type"`
	DestinationID   uuid.UUID `json:"destination_id"`
	DestinationName string    `json:"destination_name"`
	UserID          uuid.UUID `json:"user_id"`
	BookedDate      string    `json:"booked_date"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Attendees       int32     `json:"attendees"`
	TotalCents      int64     `json:"total_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	BookableType    string    `json:"bookable_type"`
	DestinationID   uuid.UUID `json:"destination_id"`
	DestinationName string    `json:"destination_name"`
	BookedDate      string    `json:"booked_date"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Attendees       int32     `json:"attendees"`
	TotalCents      int64     `json:"total_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type SlotView struct {
	ID             uuid.UUID `json:"id"`
	DestinationID  uuid.UUID `json:"destination_id"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	PriceCents     int64     `json:"price_cents"`
	EffectiveFrom  string    `json:"effective_from"`
	EffectiveUntil string    `json:"effective_until"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type EventView struct {
	ID            uuid.UUID `json:"id"`
	DestinationID uuid.UUID `json:"destination_id"`
	Name          string    `json:"name"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	PriceCents    int64     `json:"price_cents"`
	Capacity      *int32    `json:"capacity,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DestinationView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Capacity *int32    `json:"capacity,omitempty"`
}
