//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain/slot"
	"venuebook/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisAvailabilityCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisAvailabilityCache(client, 5*time.Minute), mr
}

func mustDate(t *testing.T, value string) slot.Date {
	t.Helper()
	d, err := slot.ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestRedisAvailabilityCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	destID := uuid.New()
	date := mustDate(t, "2024-06-15")

	_, hit, err := c.GetSlots(ctx, destID, date)
	require.NoError(t, err)
	assert.False(t, hit)

	views := []queries.SlotAvailabilityView{
		{
			SlotID:         uuid.New(),
			DestinationID:  destID,
			StartTime:      "09:00",
			EndTime:        "10:00",
			PriceCents:     50000,
			EffectiveFrom:  "2024-01-01",
			EffectiveUntil: "2024-12-31",
			IsAvailable:    true,
		},
	}
	require.NoError(t, c.SetSlots(ctx, destID, date, views))

	got, hit, err := c.GetSlots(ctx, destID, date)
	require.NoError(t, err)
	assert.True(t, hit)
	if diff := cmp.Diff(views, got); diff != "" {
		t.Errorf("cached views mismatch (-want +got):\n%s", diff)
	}
}

func TestRedisAvailabilityCache_EmptyListIsAHit(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	destID := uuid.New()
	date := mustDate(t, "2024-06-15")

	require.NoError(t, c.SetSlots(ctx, destID, date, []queries.SlotAvailabilityView{}))

	got, hit, err := c.GetSlots(ctx, destID, date)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, got)
}

func TestRedisAvailabilityCache_KeysAreScopedPerDestinationAndDate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	destID := uuid.New()
	otherDest := uuid.New()
	date := mustDate(t, "2024-06-15")
	otherDate := mustDate(t, "2024-06-16")

	require.NoError(t, c.SetSlots(ctx, destID, date, []queries.SlotAvailabilityView{{SlotID: uuid.New()}}))

	_, hit, err := c.GetSlots(ctx, otherDest, date)
	require.NoError(t, err)
	assert.False(t, hit)

	_, hit, err = c.GetSlots(ctx, destID, otherDate)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisAvailabilityCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	destID := uuid.New()
	date := mustDate(t, "2024-06-15")

	require.NoError(t, c.SetSlots(ctx, destID, date, []queries.SlotAvailabilityView{{SlotID: uuid.New()}}))
	require.NoError(t, c.InvalidateSlots(ctx, destID, date))

	_, hit, err := c.GetSlots(ctx, destID, date)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisAvailabilityCache_TTLExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	destID := uuid.New()
	date := mustDate(t, "2024-06-15")

	require.NoError(t, c.SetSlots(ctx, destID, date, []queries.SlotAvailabilityView{{SlotID: uuid.New()}}))

	mr.FastForward(6 * time.Minute)

	_, hit, err := c.GetSlots(ctx, destID, date)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestNoopAvailabilityCache(t *testing.T) {
	c := NewNoopAvailabilityCache()
	ctx := context.Background()

	require.NoError(t, c.SetSlots(ctx, uuid.New(), mustDate(t, "2024-06-15"), nil))

	_, hit, err := c.GetSlots(ctx, uuid.New(), mustDate(t, "2024-06-15"))
	require.NoError(t, err)
	assert.False(t, hit)
}
