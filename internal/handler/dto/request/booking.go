package request

import (
	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/slot"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/commands"

	"github.com/google/uuid"
)

var (
	ErrInvalidBookableType = errs.New("bookable_type must be 'slot' or 'event'")
	ErrDateRequired        = errs.New("date is required for slot bookings")
	ErrInvalidDate         = errs.New("date must be formatted as YYYY-MM-DD")
)

type CreateBookingRequest struct {
	BookableType string    `json:"bookable_type" binding:"required"`
	BookableID   uuid.UUID `json:"bookable_id" binding:"required"`
	Date         string    `json:"date,omitempty"`
	Attendees    int32     `json:"attendees" binding:"required,min=1"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	bookableType := booking.BookableType(r.BookableType)
	if !bookableType.IsValid() {
		return commands.CreateBookingInput{}, ErrInvalidBookableType
	}

	in := commands.CreateBookingInput{
		BookableType: bookableType,
		BookableID:   r.BookableID,
		Attendees:    r.Attendees,
	}

	if bookableType == booking.BookableSlot {
		if r.Date == "" {
			return commands.CreateBookingInput{}, ErrDateRequired
		}
		date, err := slot.ParseDate(r.Date)
		if err != nil {
			return commands.CreateBookingInput{}, ErrInvalidDate
		}
		in.Date = date
	}

	return in, nil
}
