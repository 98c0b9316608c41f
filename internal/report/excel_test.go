//go:build unit

package report_test

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain/slot"
	"venuebook/internal/report"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/builder"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDestinationBookings(t *testing.T) {
	ctx := context.Background()
	destID := uuid.New()

	newExporter := func(t *testing.T) (*report.Exporter, *queriesmock.MockBookingQueries) {
		ctrl := gomock.NewController(t)
		bookingQueries := queriesmock.NewMockBookingQueries(ctrl)
		return report.NewExporter(bookingQueries), bookingQueries
	}

	t.Run("writes one row per booking under the header", func(t *testing.T) {
		sut, bookingQueries := newExporter(t)
		startsAt := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
		items := []*queries.BookingListItem{
			{
				ID:              uuid.New(),
				BookableType:    "slot",
				DestinationID:   destID,
				DestinationName: "Harbor Hall",
				BookedDate:      "2024-06-15",
				StartsAt:        startsAt,
				EndsAt:          startsAt.Add(time.Hour),
				Attendees:       2,
				TotalCents:      100000,
				Status:          "confirmed",
			},
			{
				ID:              uuid.New(),
				BookableType:    "event",
				DestinationID:   destID,
				DestinationName: "Harbor Hall",
				BookedDate:      "2024-06-20",
				StartsAt:        startsAt.AddDate(0, 0, 5),
				EndsAt:          startsAt.AddDate(0, 0, 5).Add(2 * time.Hour),
				Attendees:       1,
				TotalCents:      120000,
				Status:          "confirmed",
			},
		}

		bookingQueries.EXPECT().ListByDestination(ctx, destID, (*slot.Date)(nil), (*slot.Date)(nil)).
			Return(items, nil)

		f, err := sut.DestinationBookings(ctx, destID, nil, nil)
		require.NoError(t, err)
		defer f.Close()

		title, err := f.GetCellValue("Bookings", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Harbor Hall bookings (2)", title)

		header, err := f.GetCellValue("Bookings", "A2")
		require.NoError(t, err)
		assert.Equal(t, "Booking ID", header)

		firstID, err := f.GetCellValue("Bookings", "A3")
		require.NoError(t, err)
		assert.Equal(t, items[0].ID.String(), firstID)

		firstTotal, err := f.GetCellValue("Bookings", "G3")
		require.NoError(t, err)
		assert.Equal(t, "1000.00", firstTotal)

		secondType, err := f.GetCellValue("Bookings", "B4")
		require.NoError(t, err)
		assert.Equal(t, "event", secondType)
	})

	t.Run("empty export still produces a titled sheet", func(t *testing.T) {
		sut, bookingQueries := newExporter(t)
		from := builder.MustDate("2024-06-01")
		until := builder.MustDate("2024-06-30")

		bookingQueries.EXPECT().ListByDestination(ctx, destID, &from, &until).
			Return(nil, nil)

		f, err := sut.DestinationBookings(ctx, destID, &from, &until)
		require.NoError(t, err)
		defer f.Close()

		title, err := f.GetCellValue("Bookings", "A1")
		require.NoError(t, err)
		assert.Equal(t, "No bookings", title)

		sheets := f.GetSheetList()
		assert.Equal(t, []string{"Bookings"}, sheets)
	})

	t.Run("query failure propagates", func(t *testing.T) {
		sut, bookingQueries := newExporter(t)

		bookingQueries.EXPECT().ListByDestination(ctx, destID, gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		_, err := sut.DestinationBookings(ctx, destID, nil, nil)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
