package request

import (
	"venuebook/internal/domain/slot"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/commands"
)

var (
	ErrInvalidTimeOfDay = errs.New("times must be formatted as HH:MM")
	ErrInvalidDateRange = errs.New("effective range must be two valid dates with from <= until")
)

type SlotDefinitionRequest struct {
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	PriceCents     int64  `json:"price_cents"`
	EffectiveFrom  string `json:"effective_from" binding:"required"`
	EffectiveUntil string `json:"effective_until" binding:"required"`
}

func (r SlotDefinitionRequest) ToInput() (commands.CreateSlotInput, error) {
	startTime, err := slot.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return commands.CreateSlotInput{}, ErrInvalidTimeOfDay
	}
	endTime, err := slot.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return commands.CreateSlotInput{}, ErrInvalidTimeOfDay
	}

	from, err := slot.ParseDate(r.EffectiveFrom)
	if err != nil {
		return commands.CreateSlotInput{}, ErrInvalidDateRange
	}
	until, err := slot.ParseDate(r.EffectiveUntil)
	if err != nil {
		return commands.CreateSlotInput{}, ErrInvalidDateRange
	}
	effective, err := slot.NewDateRange(from, until)
	if err != nil {
		return commands.CreateSlotInput{}, ErrInvalidDateRange
	}

	return commands.CreateSlotInput{
		StartTime:  startTime,
		EndTime:    endTime,
		PriceCents: r.PriceCents,
		Effective:  effective,
	}, nil
}
