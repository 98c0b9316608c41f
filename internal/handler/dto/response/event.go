package response

import (
	"time"

	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventResponse struct {
	ID            uuid.UUID `json:"id"`
	DestinationID uuid.UUID `json:"destinationId"`
	Name          string    `json:"name"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
	PriceCents    int64     `json:"priceCents"`
	Capacity      *int32    `json:"capacity,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromEventView(view *queries.EventView) *EventResponse {
	var resp EventResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromEventViews(views []*queries.EventView) []*EventResponse {
	resps := make([]*EventResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromEventView(view))
	}
	return resps
}
