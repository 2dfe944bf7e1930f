package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"boxgym/internal/db"
	"boxgym/internal/schedule"

	"github.com/redis/go-redis/v9"
)

var (
	ErrSlotNotFound     = schedule.ErrSlotNotFound
	ErrCapacityExceeded = errors.New("schedule slot is full")
	ErrAlreadyBooked    = errors.New("user already has a booking for this slot")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)

type repository struct {
	rdb redis.Cmdable
}

func NewRepository(rdb redis.Cmdable) Repository {
	return &repository{rdb: rdb}
}

func (r *repository) Book(ctx context.Context, b Booking) (*schedule.Slot, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}

	keys := []string{
		db.KeySchedule,
		db.BookingKey(b.ID),
		db.UserBookingsKey(b.UserID),
		db.SlotHoldersKey(b.ScheduleSlotID),
	}
	res, err := bookScript.Run(ctx, r.rdb, keys, b.ScheduleSlotID, string(data), b.ID, b.UserID).StringSlice()
	if err != nil {
		return nil, fmt.Errorf("run book script: %w", err)
	}
	if len(res) == 0 {
		return nil, errors.New("book script returned no result")
	}

	switch res[0] {
	case "ok":
		if len(res) < 2 {
			return nil, errors.New("book script returned no slot")
		}
		return schedule.DecodeSlot([]byte(res[1]))
	case "not_found":
		return nil, ErrSlotNotFound
	case "duplicate":
		return nil, ErrAlreadyBooked
	case "full":
		return nil, ErrCapacityExceeded
	default:
		return nil, fmt.Errorf("book script: unexpected result %q", res[0])
	}
}

func (r *repository) Cancel(ctx context.Context, b Booking) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}

	keys := []string{
		db.KeySchedule,
		db.BookingKey(b.ID),
		db.SlotHoldersKey(b.ScheduleSlotID),
	}
	res, err := cancelScript.Run(ctx, r.rdb, keys, b.ScheduleSlotID, b.UserID, b.ID, string(data)).StringSlice()
	if err != nil {
		return fmt.Errorf("run cancel script: %w", err)
	}
	if len(res) == 0 {
		return errors.New("cancel script returned no result")
	}

	switch res[0] {
	case "ok":
		return nil
	case "not_active":
		return ErrAlreadyCancelled
	default:
		return fmt.Errorf("cancel script: unexpected result %q", res[0])
	}
}

func (r *repository) GetBooking(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	found, err := db.GetJSON(ctx, r.rdb, db.BookingKey(id), &b)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrBookingNotFound
	}
	return &b, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	ids, err := r.rdb.LRange(ctx, db.UserBookingsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return r.loadAll(ctx, ids)
}

func (r *repository) ListBySlot(ctx context.Context, slotID string) ([]Booking, error) {
	holders, err := r.rdb.HGetAll(ctx, db.SlotHoldersKey(slotID)).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(holders))
	for _, id := range holders {
		ids = append(ids, id)
	}

	bookings, err := r.loadAll(ctx, ids)
	if err != nil {
		return nil, err
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].BookingDate.Before(bookings[j].BookingDate)
	})
	return bookings, nil
}

// loadAll fetches bookings in id order. Ids without a stored booking are skipped.
func (r *repository) loadAll(ctx context.Context, ids []string) ([]Booking, error) {
	bookings := make([]Booking, 0, len(ids))
	if len(ids) == 0 {
		return bookings, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = db.BookingKey(id)
	}

	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var b Booking
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			return nil, fmt.Errorf("decode booking %s: %w", ids[i], err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
