package booking

import (
	"strings"
	"time"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Booking struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	ScheduleSlotID string     `json:"scheduleSlotId"`
	ClassType      string     `json:"classType"`
	BookingDate    time.Time  `json:"bookingDate"`
	Status         Status     `json:"status"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`
}

// Customer is the resolved caller a booking is made for.
type Customer struct {
	ID    string
	Email string
	Name  string
}

type BookClassRequest struct {
	ScheduleSlotID string `json:"scheduleSlotId" binding:"max=64"`
	// ScheduleID is an older client field name for ScheduleSlotID.
	ScheduleID string `json:"scheduleId" binding:"max=64"`
	ClassType  string `json:"classType" binding:"max=100"`
}

func (r BookClassRequest) SlotID() string {
	if id := strings.TrimSpace(r.ScheduleSlotID); id != "" {
		return id
	}
	return strings.TrimSpace(r.ScheduleID)
}

type BookingResponse struct {
	Success bool     `json:"success" example:"true"`
	Booking *Booking `json:"booking"`
}

type BookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}
