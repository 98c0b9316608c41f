package response

import (
	"time"

	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID             uuid.UUID `json:"id"`
	DestinationID  uuid.UUID `json:"destinationId"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	PriceCents     int64     `json:"priceCents"`
	EffectiveFrom  string    `json:"effectiveFrom"`
	EffectiveUntil string    `json:"effectiveUntil"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromSlotView(view *queries.SlotView) *SlotResponse {
	var resp SlotResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	resps := make([]*SlotResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromSlotView(view))
	}
	return resps
}
