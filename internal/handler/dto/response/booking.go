package response

import (
	"time"

	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	BookableID      uuid.UUID `json:"bookableId"`
	BookableType    string    `json:"bookableType"`
	DestinationID   uuid.UUID `json:"destinationId"`
	DestinationName string    `json:"destinationName"`
	UserID          uuid.UUID `json:"userId"`
	BookedDate      string    `json:"bookedDate"`
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	Attendees       int32     `json:"attendees"`
	TotalCents      int64     `json:"totalCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	BookableType    string    `json:"bookableType"`
	DestinationID   uuid.UUID `json:"destinationId"`
	DestinationName string    `json:"destinationName"`
	BookedDate      string    `json:"bookedDate"`
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	Attendees       int32     `json:"attendees"`
	TotalCents      int64     `json:"totalCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	resps := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		var resp BookingListResponse
		_ = copier.Copy(&resp, item)
		resps = append(resps, &resp)
	}
	return resps
}
