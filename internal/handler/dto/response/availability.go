package response

import (
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotAvailabilityResponse struct {
	SlotID         uuid.UUID `json:"slotId"`
	DestinationID  uuid.UUID `json:"destinationId"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	PriceCents     int64     `json:"priceCents"`
	EffectiveFrom  string    `json:"effectiveFrom"`
	EffectiveUntil string    `json:"effectiveUntil"`
	IsAvailable    bool      `json:"isAvailable"`
}

type SlotAvailabilityListResponse struct {
	Date  string                     `json:"date"`
	Slots []SlotAvailabilityResponse `json:"slots"`
}

type EventAvailabilityResponse struct {
	EventID        uuid.UUID `json:"eventId"`
	Capacity       *int32    `json:"capacity,omitempty"`
	ActiveBookings int64     `json:"activeBookings"`
	Remaining      *int32    `json:"remaining,omitempty"`
	IsAvailable    bool      `json:"isAvailable"`
}

func FromSlotAvailabilityViews(date string, views []queries.SlotAvailabilityView) *SlotAvailabilityListResponse {
	slots := make([]SlotAvailabilityResponse, 0, len(views))
	for _, view := range views {
		var resp SlotAvailabilityResponse
		_ = copier.Copy(&resp, &view)
		slots = append(slots, resp)
	}
	return &SlotAvailabilityListResponse{Date: date, Slots: slots}
}

func FromEventAvailabilityView(view *queries.EventAvailabilityView) *EventAvailabilityResponse {
	var resp EventAvailabilityResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
