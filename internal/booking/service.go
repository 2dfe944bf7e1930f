package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boxgym/internal/logger"
	"boxgym/internal/metrics"
	"boxgym/internal/schedule"

	"github.com/google/uuid"
)

var (
	ErrMissingSlotID   = errors.New("scheduleSlotId is required")
	ErrNotBookingOwner = errors.New("booking belongs to another user")
)

// Notifier delivers booking emails. Failures never fail the booking.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, email, name, className, day, at string) error
	SendCancellation(ctx context.Context, email, name, className, day, at string) error
}

type Service interface {
	BookClass(ctx context.Context, customer Customer, req BookClassRequest) (*Booking, error)
	CancelBooking(ctx context.Context, customer Customer, bookingID string) (*Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]Booking, error)
	ListSlotBookings(ctx context.Context, slotID string) ([]Booking, error)
}

// NameLookup resolves the display name used to greet a customer in emails.
type NameLookup interface {
	LookupName(ctx context.Context, userID string) (string, error)
}

type service struct {
	repo     Repository
	slots    schedule.Service
	notifier Notifier
	names    NameLookup
	now      func() time.Time
}

// NewService builds the booking engine. notifier and names may be nil.
func NewService(repo Repository, slots schedule.Service, notifier Notifier, names NameLookup) Service {
	return &service{
		repo:     repo,
		slots:    slots,
		notifier: notifier,
		names:    names,
		now:      time.Now,
	}
}

// withName fills customer.Name from the lookup when the token carried none.
func (s *service) withName(ctx context.Context, customer Customer) Customer {
	if customer.Name != "" || s.names == nil {
		return customer
	}
	name, err := s.names.LookupName(ctx, customer.ID)
	if err != nil {
		logger.Warn("Failed to look up customer name", "user_id", customer.ID, "error", err)
		return customer
	}
	customer.Name = name
	return customer
}

func (s *service) BookClass(ctx context.Context, customer Customer, req BookClassRequest) (*Booking, error) {
	slotID := req.SlotID()
	if slotID == "" {
		return nil, ErrMissingSlotID
	}

	slot, err := s.slots.GetSlot(ctx, slotID)
	if err != nil {
		if errors.Is(err, schedule.ErrSlotNotFound) {
			metrics.RecordBooking("not_found")
		}
		return nil, err
	}

	classType := req.ClassType
	if classType == "" {
		classType = slot.ClassName
	}

	b := Booking{
		ID:             uuid.NewString(),
		UserID:         customer.ID,
		ScheduleSlotID: slotID,
		ClassType:      classType,
		BookingDate:    s.now().UTC(),
		Status:         StatusConfirmed,
	}

	updated, err := s.repo.Book(ctx, b)
	if err != nil {
		metrics.RecordBooking(outcome(err))
		return nil, err
	}

	metrics.RecordBooking("confirmed")
	metrics.RecordSpotsAvailable(updated.ID, updated.SpotsAvailable())
	logger.Info("Booking confirmed", "booking_id", b.ID, "user_id", b.UserID, "slot_id", slotID,
		"spots_available", updated.SpotsAvailable())

	if s.notifier != nil && customer.Email != "" {
		customer = s.withName(ctx, customer)
		if err := s.notifier.SendBookingConfirmation(ctx, customer.Email, customer.Name, slot.ClassName, string(slot.Day), slot.Time); err != nil {
			logger.Warn("Failed to queue booking confirmation", "booking_id", b.ID, "error", err)
		}
	}

	return &b, nil
}

func (s *service) CancelBooking(ctx context.Context, customer Customer, bookingID string) (*Booking, error) {
	b, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != customer.ID {
		return nil, ErrNotBookingOwner
	}
	if b.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	cancelledAt := s.now().UTC()
	b.Status = StatusCancelled
	b.CancelledAt = &cancelledAt

	if err := s.repo.Cancel(ctx, *b); err != nil {
		return nil, err
	}

	metrics.RecordBookingCancellation()
	logger.Info("Booking cancelled", "booking_id", b.ID, "user_id", b.UserID, "slot_id", b.ScheduleSlotID)

	if s.notifier != nil && customer.Email != "" {
		s.notifyCancellation(ctx, s.withName(ctx, customer), b)
	}

	return b, nil
}

func (s *service) notifyCancellation(ctx context.Context, customer Customer, b *Booking) {
	slot, err := s.slots.GetSlot(ctx, b.ScheduleSlotID)
	if err != nil {
		logger.Warn("Skipping cancellation email", "booking_id", b.ID, "error", err)
		return
	}
	if err := s.notifier.SendCancellation(ctx, customer.Email, customer.Name, slot.ClassName, string(slot.Day), slot.Time); err != nil {
		logger.Warn("Failed to queue cancellation email", "booking_id", b.ID, "error", err)
	}
}

func (s *service) ListUserBookings(ctx context.Context, userID string) ([]Booking, error) {
	bookings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user bookings: %w", err)
	}
	return bookings, nil
}

func (s *service) ListSlotBookings(ctx context.Context, slotID string) ([]Booking, error) {
	if _, err := s.slots.GetSlot(ctx, slotID); err != nil {
		return nil, err
	}

	bookings, err := s.repo.ListBySlot(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("load slot bookings: %w", err)
	}
	return bookings, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrCapacityExceeded):
		return "full"
	case errors.Is(err, ErrAlreadyBooked):
		return "duplicate"
	case errors.Is(err, ErrSlotNotFound):
		return "not_found"
	default:
		return "error"
	}
}
