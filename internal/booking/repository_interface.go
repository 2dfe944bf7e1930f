package booking

import (
	"context"

	"boxgym/internal/schedule"
)

type Repository interface {
	// Book claims a seat on b.ScheduleSlotID and stores b in one atomic step.
	// It returns the slot as it stands after the increment.
	Book(ctx context.Context, b Booking) (*schedule.Slot, error)
	// Cancel stores b as cancelled and releases its seat, provided b is still
	// the caller's active booking on the slot.
	Cancel(ctx context.Context, b Booking) error
	GetBooking(ctx context.Context, id string) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	// ListBySlot returns the active bookings on a slot.
	ListBySlot(ctx context.Context, slotID string) ([]Booking, error)
}
