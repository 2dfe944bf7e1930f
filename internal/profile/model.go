package profile

import (
	"time"

	"boxgym/internal/booking"
)

const DefaultMembershipType = "trial"

type UserProfile struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	MemberSince    time.Time `json:"memberSince"`
	MembershipType string    `json:"membershipType"`
}

// Profile is a stored profile joined with the user's bookings.
type Profile struct {
	UserProfile
	Bookings []booking.Booking `json:"bookings"`
}

type CreateProfileRequest struct {
	Email string `json:"email" binding:"omitempty,email,max=254"`
	Name  string `json:"name" binding:"max=100"`
}

type ProfileResponse struct {
	Profile *Profile `json:"profile"`
}
