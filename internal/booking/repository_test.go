package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"boxgym/internal/schedule"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), PoolSize: 64})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb, mr
}

func seedSlot(t *testing.T, rdb redis.Cmdable, slot schedule.Slot) {
	t.Helper()
	created, err := schedule.NewRepository(rdb).CreateSlot(context.Background(), slot)
	require.NoError(t, err)
	require.True(t, created)
}

func currentBookings(t *testing.T, rdb redis.Cmdable, slotID string) int {
	t.Helper()
	slot, err := schedule.NewRepository(rdb).GetSlot(context.Background(), slotID)
	require.NoError(t, err)
	return slot.CurrentBookings
}

func newBooking(id, userID, slotID string) Booking {
	return Booking{
		ID:             id,
		UserID:         userID,
		ScheduleSlotID: slotID,
		ClassType:      "Beginner (Fog Cutter)",
		BookingDate:    time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC),
		Status:         StatusConfirmed,
	}
}

func TestRepository_BookIncrementsAndStores(t *testing.T) {
	rdb, _ := setupRedis(t)
	repo := NewRepository(rdb)
	ctx := context.Background()

	seedSlot(t, rdb, schedule.Slot{ID: "wed-6pm-advanced", ClassID: "advanced-twin-peaks", Day: "Wednesday", Time: "18:00", MaxCapacity: 12, CurrentBookings: 5})

	slot, err := repo.Book(ctx, newBooking("b1", "user-1", "wed-6pm-advanced"))
	require.NoError(t, err)
	assert.Equal(t, 6, slot.CurrentBookings)
	assert.Equal(t, "Wednesday", string(slot.Day))
	assert.Equal(t, 6, currentBookings(t, rdb, "wed-6pm-advanced"))

	stored, err := repo.GetBooking(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, stored.Status)
	assert.Equal(t, "user-1", stored.UserID)

	mine, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "b1", mine[0].ID)
}

func TestRepository_BookRejections(t *testing.T) {
	rdb, _ := setupRedis(t)
	repo := NewRepository(rdb)
	ctx := context.Background()

	seedSlot(t, rdb, schedule.Slot{ID: "full", MaxCapacity: 20, CurrentBookings: 20})
	seedSlot(t, rdb, schedule.Slot{ID: "open", MaxCapacity: 20, CurrentBookings: 3})

	_, err := repo.Book(ctx, newBooking("b1", "user-1", "full"))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 20, currentBookings(t, rdb, "full"))

	_, err = repo.Book(ctx, newBooking("b2", "user-1", "missing"))
	assert.ErrorIs(t, err, ErrSlotNotFound)

	_, err = repo.Book(ctx, newBooking("b3", "user-1", "open"))
	require.NoError(t, err)
	_, err = repo.Book(ctx, newBooking("b4", "user-1", "open"))
	assert.ErrorIs(t, err, ErrAlreadyBooked)
	assert.Equal(t, 4, currentBookings(t, rdb, "open"))

	for _, id := range []string{"b1", "b2", "b4"} {
		_, err := repo.GetBooking(ctx, id)
		assert.ErrorIs(t, err, ErrBookingNotFound, id)
	}

	mine, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestRepository_ConcurrentBookingsNeverOverfill(t *testing.T) {
	rdb, _ := setupRedis(t)
	repo := NewRepository(rdb)
	ctx := context.Background()

	const attempts = 30
	seedSlot(t, rdb, schedule.Slot{ID: "mon-6am-beginner", MaxCapacity: 20, CurrentBookings: 8})

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		full      int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Book(ctx, newBooking(fmt.Sprintf("b%d", i), fmt.Sprintf("user-%d", i), "mon-6am-beginner"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, ErrCapacityExceeded):
				full++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 12, successes)
	assert.Equal(t, attempts-12, full)
	assert.Equal(t, 20, currentBookings(t, rdb, "mon-6am-beginner"))

	roster, err := repo.ListBySlot(ctx, "mon-6am-beginner")
	require.NoError(t, err)
	assert.Len(t, roster, 12)
}

func TestRepository_CancelReleasesSeat(t *testing.T) {
	rdb, _ := setupRedis(t)
	repo := NewRepository(rdb)
	ctx := context.Background()

	seedSlot(t, rdb, schedule.Slot{ID: "tue-12pm-beginner", MaxCapacity: 20, CurrentBookings: 15})

	b := newBooking("b1", "user-1", "tue-12pm-beginner")
	_, err := repo.Book(ctx, b)
	require.NoError(t, err)
	require.Equal(t, 16, currentBookings(t, rdb, "tue-12pm-beginner"))

	cancelledAt := time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC)
	b.Status = StatusCancelled
	b.CancelledAt = &cancelledAt
	require.NoError(t, repo.Cancel(ctx, b))
	assert.Equal(t, 15, currentBookings(t, rdb, "tue-12pm-beginner"))

	stored, err := repo.GetBooking(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, stored.Status)
	require.NotNil(t, stored.CancelledAt)

	// second cancel must not release another seat
	assert.ErrorIs(t, repo.Cancel(ctx, b), ErrAlreadyCancelled)
	assert.Equal(t, 15, currentBookings(t, rdb, "tue-12pm-beginner"))

	roster, err := repo.ListBySlot(ctx, "tue-12pm-beginner")
	require.NoError(t, err)
	assert.Empty(t, roster)

	// the seat can be booked again
	_, err = repo.Book(ctx, newBooking("b2", "user-1", "tue-12pm-beginner"))
	require.NoError(t, err)

	mine, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "b1", mine[0].ID)
	assert.Equal(t, "b2", mine[1].ID)
}

func TestRepository_CancelNeverGoesNegative(t *testing.T) {
	rdb, mr := setupRedis(t)
	repo := NewRepository(rdb)
	ctx := context.Background()

	seedSlot(t, rdb, schedule.Slot{ID: "s", MaxCapacity: 5})
	mr.HSet("schedule:s:holders", "user-1", "b1")

	b := newBooking("b1", "user-1", "s")
	b.Status = StatusCancelled
	require.NoError(t, repo.Cancel(ctx, b))
	assert.Zero(t, currentBookings(t, rdb, "s"))
}

func TestRepository_ListByUserEmpty(t *testing.T) {
	rdb, _ := setupRedis(t)
	repo := NewRepository(rdb)

	bookings, err := repo.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}
