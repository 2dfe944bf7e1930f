package db

import "strings"

// Singleton collections.
const (
	KeyClasses      = "classes"
	KeyTrainers     = "trainers"
	KeyTestimonials = "testimonials"
	KeySchedule     = "schedule"
)

func UserKey(userID string) string {
	return "user:" + userID
}

func UserBookingsKey(userID string) string {
	return "user:" + userID + ":bookings"
}

func BookingKey(bookingID string) string {
	return "booking:" + bookingID
}

// SlotHoldersKey maps user id -> active booking id for one slot.
func SlotHoldersKey(slotID string) string {
	return "schedule:" + slotID + ":holders"
}

func ContactKey(contactID string) string {
	return "contact:" + contactID
}

func NewsletterKey(email string) string {
	return "newsletter:" + strings.ToLower(strings.TrimSpace(email))
}
