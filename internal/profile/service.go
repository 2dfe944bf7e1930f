package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"boxgym/internal/booking"
	"boxgym/internal/logger"
)

var ErrMissingEmail = errors.New("email is required")

// BookingLister is the part of the booking engine a profile reads from.
type BookingLister interface {
	ListUserBookings(ctx context.Context, userID string) ([]booking.Booking, error)
}

type Service interface {
	CreateProfile(ctx context.Context, userID, email, name string) (*Profile, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}

type service struct {
	repo     Repository
	bookings BookingLister
	now      func() time.Time
}

func NewService(repo Repository, bookings BookingLister) Service {
	return &service{repo: repo, bookings: bookings, now: time.Now}
}

// CreateProfile writes a fresh profile. An existing profile for userID is replaced.
func (s *service) CreateProfile(ctx context.Context, userID, email, name string) (*Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrMissingEmail
	}

	p := UserProfile{
		ID:             userID,
		Email:          email,
		Name:           strings.TrimSpace(name),
		MemberSince:    s.now().UTC(),
		MembershipType: DefaultMembershipType,
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	logger.Info("Profile created", "user_id", userID)
	return s.withBookings(ctx, p)
}

func (s *service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withBookings(ctx, *p)
}

func (s *service) withBookings(ctx context.Context, p UserProfile) (*Profile, error) {
	bookings, err := s.bookings.ListUserBookings(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{UserProfile: p, Bookings: bookings}, nil
}
