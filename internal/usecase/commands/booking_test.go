//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/event"
	"venuebook/internal/domain/slot"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"
	"venuebook/tests/common/builder"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// The unit of work is faked by hand: the scripted repositories below let each
// test steer exactly one branch of the transaction without a database.

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

type fakeTx struct {
	bookings    *fakeBookingRepo
	events      *fakeEventRepo
	idempotency *fakeIdempotencyRepo
	reads       *fakeCommandReads
}

func (t *fakeTx) Bookings() shared.BookingRepository       { return t.bookings }
func (t *fakeTx) Slots() shared.SlotRepository             { return nil }
func (t *fakeTx) Events() shared.EventRepository           { return t.events }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository { return t.idempotency }
func (t *fakeTx) Reads() shared.CommandReads               { return t.reads }

type fakeBookingRepo struct {
	createErr error
	created   *booking.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = b
	return nil
}

type fakeEventRepo struct {
	event   *event.Event
	lockErr error
	locked  bool
}

func (r *fakeEventRepo) Create(context.Context, *event.Event) error { return nil }

func (r *fakeEventRepo) LockByID(_ context.Context, _ uuid.UUID) (*event.Event, error) {
	if r.lockErr != nil {
		return nil, r.lockErr
	}
	r.locked = true
	return r.event, nil
}

type fakeIdempotencyRepo struct {
	insertOK  bool
	insertErr error

	// Get mirrors the hash TryInsert saw unless reusedHash overrides it.
	recordStatus    string
	recordBookingID *uuid.UUID
	reusedHash      string
	getErr          error

	seenHash      string
	completed     bool
	completedWith uuid.UUID
}

func (r *fakeIdempotencyRepo) TryInsert(_ context.Context, _, _ uuid.UUID, _, requestHash string, _ time.Time) (bool, error) {
	r.seenHash = requestHash
	return r.insertOK, r.insertErr
}

func (r *fakeIdempotencyRepo) Get(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	hash := r.seenHash
	if r.reusedHash != "" {
		hash = r.reusedHash
	}
	return &shared.IdempotencyRecord{
		Key:             key,
		UserID:          userID,
		Status:          r.recordStatus,
		RequestHash:     hash,
		ResultBookingID: r.recordBookingID,
	}, nil
}

func (r *fakeIdempotencyRepo) MarkCompleted(_ context.Context, _, _ uuid.UUID, _ string, bookingID uuid.UUID) error {
	r.completed = true
	r.completedWith = bookingID
	return nil
}

type fakeCommandReads struct {
	slot     *slot.Slot
	slotErr  error
	count    int64
	countErr error
}

func (r *fakeCommandReads) SlotByID(_ context.Context, _ uuid.UUID) (*slot.Slot, error) {
	if r.slotErr != nil {
		return nil, r.slotErr
	}
	return r.slot, nil
}

func (r *fakeCommandReads) DestinationExists(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}

func (r *fakeCommandReads) ActiveEventBookingCount(context.Context, uuid.UUID) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return r.count, nil
}

type bookingCommandsFixture struct {
	tx      *fakeTx
	queries *queriesmock.MockBookingQueries
	cache   *queriesmock.MockAvailabilityCache
	sut     commands.BookingCommands
}

func newBookingCommandsFixture(t *testing.T) *bookingCommandsFixture {
	ctrl := gomock.NewController(t)
	tx := &fakeTx{
		bookings:    &fakeBookingRepo{},
		events:      &fakeEventRepo{},
		idempotency: &fakeIdempotencyRepo{insertOK: true},
		reads:       &fakeCommandReads{},
	}
	bookingQueries := queriesmock.NewMockBookingQueries(ctrl)
	cache := queriesmock.NewMockAvailabilityCache(ctrl)

	mockClock := clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	factory := booking.NewFactory(&booking.Services{Clock: mockClock, Location: time.UTC})

	return &bookingCommandsFixture{
		tx:      tx,
		queries: bookingQueries,
		cache:   cache,
		sut:     commands.NewBookingCommands(&fakeUoW{tx: tx}, factory, bookingQueries, cache, mockClock),
	}
}

func slotInput(s *slot.Slot, date string) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		BookableType: booking.BookableSlot,
		BookableID:   s.ID(),
		Date:         builder.MustDate(date),
		Attendees:    2,
	}
}

func TestBookingCommands_Create_Slot(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := uuid.New()

	t.Run("creates a confirmed booking and invalidates the cache", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		s := builder.NewSlotBuilder().MustBuildDomain()
		f.tx.reads.slot = s

		f.cache.EXPECT().InvalidateSlots(ctx, s.DestinationID(), builder.MustDate("2024-06-15")).Return(nil)
		f.queries.EXPECT().GetByIDSystem(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
				return &queries.BookingView{ID: id, Status: "confirmed"}, nil
			})

		result, err := f.sut.Create(ctx, userID, key, slotInput(s, "2024-06-15"))
		require.NoError(t, err)
		assert.False(t, result.IsReplayed)

		created := f.tx.bookings.created
		require.NotNil(t, created)
		assert.Equal(t, s.ID(), created.BookableID())
		assert.Equal(t, userID, created.UserID())
		assert.Equal(t, "2024-06-15", created.BookedDate().String())
		assert.Equal(t, booking.StatusConfirmed, created.Status())

		assert.True(t, f.tx.idempotency.completed)
		assert.Equal(t, created.ID(), f.tx.idempotency.completedWith)
		assert.Equal(t, created.ID(), result.Booking.ID)
	})

	t.Run("occupancy conflict maps to slot already booked", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		s := builder.NewSlotBuilder().MustBuildDomain()
		f.tx.reads.slot = s
		f.tx.bookings.createErr = infra.WrapRepoErr("duplicate key", nil, infra.KindConflict)

		_, err := f.sut.Create(ctx, userID, key, slotInput(s, "2024-06-15"))
		assert.ErrorIs(t, err, commands.ErrSlotAlreadyBooked)
		assert.False(t, f.tx.idempotency.completed)
	})

	t.Run("unknown slot", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		f.tx.reads.slotErr = infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)

		in := commands.CreateBookingInput{
			BookableType: booking.BookableSlot,
			BookableID:   uuid.New(),
			Date:         builder.MustDate("2024-06-15"),
			Attendees:    1,
		}
		_, err := f.sut.Create(ctx, userID, key, in)
		assert.ErrorIs(t, err, commands.ErrSlotNotFound)
	})

	t.Run("date outside the effective range fails validation", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		s := builder.NewSlotBuilder().WithEffectiveRange("2024-01-01", "2024-05-31").MustBuildDomain()
		f.tx.reads.slot = s

		_, err := f.sut.Create(ctx, userID, key, slotInput(s, "2024-06-15"))
		assert.ErrorIs(t, err, commands.ErrBookingValidation)
		assert.Nil(t, f.tx.bookings.created)
	})

	t.Run("invalid bookable type", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		in := commands.CreateBookingInput{
			BookableType: booking.BookableType("room"),
			BookableID:   uuid.New(),
			Attendees:    1,
		}
		_, err := f.sut.Create(ctx, userID, key, in)
		assert.ErrorIs(t, err, commands.ErrInvalidBookable)
	})
}

func TestBookingCommands_Create_Event(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := uuid.New()

	eventInput := func(e *event.Event) commands.CreateBookingInput {
		return commands.CreateBookingInput{
			BookableType: booking.BookableEvent,
			BookableID:   e.ID(),
			Attendees:    1,
		}
	}

	t.Run("books under capacity with the row locked", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		e := builder.NewEventBuilder().WithCapacity(10).MustBuildDomain()
		f.tx.events.event = e
		f.tx.reads.count = 7

		f.queries.EXPECT().GetByIDSystem(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
				return &queries.BookingView{ID: id}, nil
			})

		result, err := f.sut.Create(ctx, userID, key, eventInput(e))
		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
		assert.True(t, f.tx.events.locked)

		created := f.tx.bookings.created
		require.NotNil(t, created)
		assert.Equal(t, booking.BookableEvent, created.BookableType())
		assert.Equal(t, e.ID(), created.BookableID())
	})

	t.Run("sold out when active bookings reach capacity", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		e := builder.NewEventBuilder().WithCapacity(3).MustBuildDomain()
		f.tx.events.event = e
		f.tx.reads.count = 3

		_, err := f.sut.Create(ctx, userID, key, eventInput(e))
		assert.ErrorIs(t, err, commands.ErrEventSoldOut)
		assert.Nil(t, f.tx.bookings.created)
	})

	t.Run("unlimited capacity skips the count", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		e := builder.NewEventBuilder().WithUnlimitedCapacity().MustBuildDomain()
		f.tx.events.event = e
		f.tx.reads.countErr = infra.WrapRepoErr("must not be called", nil, infra.KindDBFailure)

		f.queries.EXPECT().GetByIDSystem(ctx, gomock.Any()).
			Return(&queries.BookingView{ID: uuid.New()}, nil)

		_, err := f.sut.Create(ctx, userID, key, eventInput(e))
		require.NoError(t, err)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		f.tx.events.lockErr = infra.WrapRepoErr("event not found", nil, infra.KindNotFound)

		in := commands.CreateBookingInput{
			BookableType: booking.BookableEvent,
			BookableID:   uuid.New(),
			Attendees:    1,
		}
		_, err := f.sut.Create(ctx, userID, key, in)
		assert.ErrorIs(t, err, commands.ErrEventNotFound)
	})
}

func TestBookingCommands_Create_Idempotency(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := uuid.New()

	t.Run("completed record replays the original booking", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		s := builder.NewSlotBuilder().MustBuildDomain()
		bookingID := uuid.New()
		f.tx.reads.slot = s
		f.tx.idempotency.insertOK = false
		f.tx.idempotency.recordStatus = shared.IdempotencyStatusCompleted
		f.tx.idempotency.recordBookingID = &bookingID

		f.queries.EXPECT().GetByIDSystem(ctx, bookingID).
			Return(&queries.BookingView{ID: bookingID}, nil)

		result, err := f.sut.Create(ctx, userID, key, slotInput(s, "2024-06-15"))
		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Equal(t, bookingID, result.Booking.ID)
		assert.Nil(t, f.tx.bookings.created)
	})

	t.Run("same key with different parameters is rejected", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		s := builder.NewSlotBuilder().MustBuildDomain()
		f.tx.reads.slot = s
		f.tx.idempotency.insertOK = false
		f.tx.idempotency.recordStatus = shared.IdempotencyStatusCompleted
		f.tx.idempotency.reusedHash = "hash-of-a-different-request"

		_, err := f.sut.Create(ctx, userID, key, slotInput(s, "2024-06-15"))
		assert.ErrorIs(t, err, commands.ErrIdempotencyKeyReused)
	})

	t.Run("processing record means a concurrent request holds the key", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		s := builder.NewSlotBuilder().MustBuildDomain()
		f.tx.reads.slot = s
		f.tx.idempotency.insertOK = false
		f.tx.idempotency.recordStatus = shared.IdempotencyStatusProcessing

		_, err := f.sut.Create(ctx, userID, key, slotInput(s, "2024-06-15"))
		assert.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
	})

	t.Run("claim failure surfaces as idempotency check failure", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		s := builder.NewSlotBuilder().MustBuildDomain()
		f.tx.reads.slot = s
		f.tx.idempotency.insertErr = infra.WrapRepoErr("insert failed", nil, infra.KindDBFailure)

		_, err := f.sut.Create(ctx, userID, key, slotInput(s, "2024-06-15"))
		assert.ErrorIs(t, err, commands.ErrIdempotencyCheckFailed)
	})
}
