//go:build unit

package slot_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/slot"
	"venuebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SlotBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewSlotBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestSlot(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "09:00", actual.StartTime().String())
		assert.Equal(t, "10:00", actual.EndTime().String())
		assert.Equal(t, int64(50000), actual.PriceCents())
		assert.Equal(t, "2024-01-01", actual.Effective().Start().String())
		assert.Equal(t, "2024-12-31", actual.Effective().End().String())
	})

	t.Run("time order validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "end before start",
				mutate: func(b *builder.SlotBuilder) { b.WithStartTime(10, 0).WithEndTime(9, 0) },
				errIs:  slot.ErrInvalidTimeOrder,
			},
			{
				name:   "end equals start",
				mutate: func(b *builder.SlotBuilder) { b.WithStartTime(9, 0).WithEndTime(9, 0) },
				errIs:  slot.ErrInvalidTimeOrder,
			},
			{
				name:   "one minute window",
				mutate: func(b *builder.SlotBuilder) { b.WithStartTime(9, 0).WithEndTime(9, 1) },
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative price",
				mutate: func(b *builder.SlotBuilder) { b.WithPriceCents(-1) },
				errIs:  slot.ErrNegativePrice,
			},
			{
				name:   "zero price",
				mutate: func(b *builder.SlotBuilder) { b.WithPriceCents(0) },
			},
		})
	})

	t.Run("effective range validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "end before start",
				mutate: func(b *builder.SlotBuilder) { b.WithEffectiveRange("2024-12-31", "2024-01-01") },
				errIs:  slot.ErrInvalidDateRange,
			},
			{
				name:   "single day range",
				mutate: func(b *builder.SlotBuilder) { b.WithEffectiveRange("2024-06-15", "2024-06-15") },
			},
		})
	})

	t.Run("update revalidates in place", func(t *testing.T) {
		s := builder.NewSlotBuilder().MustBuildDomain()

		err := s.Update(builder.MustTimeOfDay(14, 0), builder.MustTimeOfDay(12, 0), 1000, s.Effective())
		assert.ErrorIs(t, err, slot.ErrInvalidTimeOrder)
		// Failed update must not partially apply
		assert.Equal(t, "09:00", s.StartTime().String())

		err = s.Update(builder.MustTimeOfDay(14, 0), builder.MustTimeOfDay(16, 0), 1000, s.Effective())
		require.NoError(t, err)
		assert.Equal(t, "14:00", s.StartTime().String())
		assert.Equal(t, "16:00", s.EndTime().String())
		assert.Equal(t, int64(1000), s.PriceCents())
	})
}

func TestSlotEffectiveOn(t *testing.T) {
	s := builder.NewSlotBuilder().WithEffectiveRange("2024-01-01", "2024-05-31").MustBuildDomain()

	assert.True(t, s.EffectiveOn(builder.MustDate("2024-01-01")))
	assert.True(t, s.EffectiveOn(builder.MustDate("2024-05-31")))
	assert.False(t, s.EffectiveOn(builder.MustDate("2023-12-31")))
	assert.False(t, s.EffectiveOn(builder.MustDate("2024-06-01")))
}

func TestSlotWindowOn(t *testing.T) {
	loc := builder.MustLocation("Asia/Kolkata")
	s := builder.NewSlotBuilder().MustBuildDomain()
	date := builder.MustDate("2024-06-15")

	start, end := s.WindowOn(date, loc)

	assert.Equal(t, time.Date(2024, 6, 15, 9, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 6, 15, 10, 0, 0, 0, loc), end)
	assert.True(t, start.Before(end))

	// Deterministic: repeated composition yields the identical window
	start2, end2 := s.WindowOn(date, loc)
	assert.True(t, start.Equal(start2))
	assert.True(t, end.Equal(end2))
}

func TestDate(t *testing.T) {
	t.Run("parse and format round trip", func(t *testing.T) {
		d, err := slot.ParseDate("2024-06-15")
		require.NoError(t, err)
		assert.Equal(t, "2024-06-15", d.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := slot.ParseDate("15/06/2024")
		assert.ErrorIs(t, err, slot.ErrInvalidDate)
	})

	t.Run("rejects overflow days", func(t *testing.T) {
		_, err := slot.NewDate(2024, time.February, 30)
		assert.ErrorIs(t, err, slot.ErrInvalidDate)
	})

	t.Run("accepts leap day", func(t *testing.T) {
		_, err := slot.NewDate(2024, time.February, 29)
		assert.NoError(t, err)
	})

	t.Run("ordering", func(t *testing.T) {
		a := builder.MustDate("2024-06-15")
		b := builder.MustDate("2024-06-16")
		assert.True(t, a.Before(b))
		assert.True(t, b.After(a))
		assert.False(t, a.Equal(b))
	})

	t.Run("local calendar date of an instant", func(t *testing.T) {
		loc := builder.MustLocation("Asia/Kolkata")
		// 2024-06-15T20:30Z is already 2024-06-16 02:00 in Kolkata
		instant := time.Date(2024, 6, 15, 20, 30, 0, 0, time.UTC)
		assert.Equal(t, "2024-06-16", slot.DateOf(instant, loc).String())
		assert.Equal(t, "2024-06-15", slot.DateOf(instant, time.UTC).String())
	})
}

func TestTimeOfDay(t *testing.T) {
	t.Run("parse variants", func(t *testing.T) {
		for _, in := range []string{"09:00", "09:00:00"} {
			got, err := slot.ParseTimeOfDay(in)
			require.NoError(t, err, in)
			assert.Equal(t, "09:00", got.String())
		}
	})

	t.Run("rejects out of range", func(t *testing.T) {
		_, err := slot.NewTimeOfDay(24, 0)
		assert.ErrorIs(t, err, slot.ErrInvalidTimeOfDay)
		_, err = slot.NewTimeOfDay(9, 60)
		assert.ErrorIs(t, err, slot.ErrInvalidTimeOfDay)
	})
}
