package request

import (
	"time"

	"venuebook/internal/usecase/commands"
)

type CreateEventRequest struct {
	Name       string    `json:"name" binding:"required"`
	StartsAt   time.Time `json:"starts_at" binding:"required"`
	EndsAt     time.Time `json:"ends_at" binding:"required"`
	PriceCents int64     `json:"price_cents"`
	Capacity   *int32    `json:"capacity,omitempty"`
}

func (r CreateEventRequest) ToInput() commands.CreateEventInput {
	return commands.CreateEventInput{
		Name:       r.Name,
		StartsAt:   r.StartsAt,
		EndsAt:     r.EndsAt,
		PriceCents: r.PriceCents,
		Capacity:   r.Capacity,
	}
}
