//go:build unit

package booking_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/pkg/clock"
	"venuebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(now time.Time, loc *time.Location) *booking.Factory {
	return booking.NewFactory(&booking.Services{
		Clock:    clock.NewMockClock(now),
		Location: loc,
	})
}

func TestNewSlotBooking(t *testing.T) {
	loc := builder.MustLocation("Asia/Kolkata")
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, loc)
	userID := uuid.New()

	t.Run("composes the window from slot times and date", func(t *testing.T) {
		f := newFactory(now, loc)
		s := builder.NewSlotBuilder().MustBuildDomain()

		b, err := f.NewSlotBooking(s, builder.MustDate("2024-06-15"), userID, 1)
		require.NoError(t, err)

		assert.Equal(t, s.ID(), b.BookableID())
		assert.Equal(t, booking.BookableSlot, b.BookableType())
		assert.Equal(t, s.DestinationID(), b.DestinationID())
		assert.Equal(t, userID, b.UserID())
		assert.Equal(t, "2024-06-15", b.BookedDate().String())
		assert.Equal(t, time.Date(2024, 6, 15, 9, 0, 0, 0, loc), b.StartsAt())
		assert.Equal(t, time.Date(2024, 6, 15, 10, 0, 0, 0, loc), b.EndsAt())
		assert.Equal(t, int32(1), b.Attendees())
		assert.Equal(t, int64(50000), b.Total().Cents())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("total scales with attendees", func(t *testing.T) {
		f := newFactory(now, loc)
		s := builder.NewSlotBuilder().WithPriceCents(2500).MustBuildDomain()

		b, err := f.NewSlotBooking(s, builder.MustDate("2024-06-15"), userID, 4)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), b.Total().Cents())
	})

	t.Run("rejects a date outside the effective range", func(t *testing.T) {
		f := newFactory(now, loc)
		s := builder.NewSlotBuilder().WithEffectiveRange("2024-01-01", "2024-05-31").MustBuildDomain()

		_, err := f.NewSlotBooking(s, builder.MustDate("2024-06-01"), userID, 1)
		assert.ErrorIs(t, err, booking.ErrDateOutsideEffectiveRange)
	})

	t.Run("rejects a past date", func(t *testing.T) {
		f := newFactory(now, loc)
		s := builder.NewSlotBuilder().MustBuildDomain()

		_, err := f.NewSlotBooking(s, builder.MustDate("2024-05-31"), userID, 1)
		assert.ErrorIs(t, err, booking.ErrDateInPast)
	})

	t.Run("accepts today", func(t *testing.T) {
		f := newFactory(now, loc)
		s := builder.NewSlotBuilder().MustBuildDomain()

		_, err := f.NewSlotBooking(s, builder.MustDate("2024-06-01"), userID, 1)
		assert.NoError(t, err)
	})

	t.Run("rejects zero attendees", func(t *testing.T) {
		f := newFactory(now, loc)
		s := builder.NewSlotBuilder().MustBuildDomain()

		_, err := f.NewSlotBooking(s, builder.MustDate("2024-06-15"), userID, 0)
		assert.ErrorIs(t, err, booking.ErrInvalidAttendees)
	})
}

func TestNewEventBooking(t *testing.T) {
	loc := builder.MustLocation("Asia/Kolkata")
	userID := uuid.New()

	t.Run("books the whole occurrence", func(t *testing.T) {
		e := builder.NewEventBuilder().WithPriceCents(120000).MustBuildDomain()
		f := newFactory(e.StartsAt().Add(-24*time.Hour), loc)

		b, err := f.NewEventBooking(e, userID, 2)
		require.NoError(t, err)

		assert.Equal(t, e.ID(), b.BookableID())
		assert.Equal(t, booking.BookableEvent, b.BookableType())
		assert.True(t, b.StartsAt().Equal(e.StartsAt()))
		assert.True(t, b.EndsAt().Equal(e.EndsAt()))
		assert.Equal(t, int64(240000), b.Total().Cents())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("rejects an already started event", func(t *testing.T) {
		e := builder.NewEventBuilder().MustBuildDomain()
		f := newFactory(e.StartsAt().Add(time.Minute), loc)

		_, err := f.NewEventBooking(e, userID, 1)
		assert.ErrorIs(t, err, booking.ErrEventAlreadyStarted)
	})
}

func TestBookingTransitions(t *testing.T) {
	loc := builder.MustLocation("Asia/Kolkata")
	f := newFactory(time.Date(2024, 6, 1, 12, 0, 0, 0, loc), loc)
	s := builder.NewSlotBuilder().MustBuildDomain()

	b, err := f.NewSlotBooking(s, builder.MustDate("2024-06-15"), uuid.New(), 1)
	require.NoError(t, err)

	// Created confirmed: confirming again is invalid, cancelling is allowed once
	assert.ErrorIs(t, b.Confirm(), booking.ErrInvalidTransition)
	require.NoError(t, b.Cancel())
	assert.Equal(t, booking.StatusCancelled, b.Status())
	assert.ErrorIs(t, b.Cancel(), booking.ErrInvalidTransition)
}

func TestStatusHolds(t *testing.T) {
	assert.True(t, booking.StatusPending.Holds())
	assert.True(t, booking.StatusConfirmed.Holds())
	assert.False(t, booking.StatusCancelled.Holds())
}
