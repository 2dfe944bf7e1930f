package schedule

import "boxgym/internal/catalog"

// Slot is one bookable class occurrence. Invariant: 0 <= CurrentBookings <= MaxCapacity.
// CurrentBookings changes only through the booking store.
type Slot struct {
	ID              string          `json:"id"`
	ClassID         string          `json:"classId"`
	Day             catalog.Weekday `json:"day"`
	Time            string          `json:"time"`
	DurationMinutes int             `json:"durationMinutes"`
	InstructorID    string          `json:"instructorId"`
	MaxCapacity     int             `json:"maxCapacity"`
	CurrentBookings int             `json:"currentBookings"`
}

func (s Slot) SpotsAvailable() int {
	return s.MaxCapacity - s.CurrentBookings
}

func (s Slot) IsFull() bool {
	return s.CurrentBookings >= s.MaxCapacity
}

type EnrichedSlot struct {
	Slot
	ClassName      string `json:"className"`
	ClassLevel     string `json:"classLevel"`
	TrainerName    string `json:"trainerName"`
	SpotsAvailable int    `json:"spotsAvailable"`
	IsFull         bool   `json:"isFull"`
}

type Filter struct {
	Day   catalog.Weekday
	Level catalog.Level
}

func (f Filter) matches(s EnrichedSlot) bool {
	if f.Day != "" && s.Day != f.Day {
		return false
	}
	if f.Level != "" && s.ClassLevel != string(f.Level) {
		return false
	}
	return true
}

// CreateSlotRequest leaves DurationMinutes, InstructorID and MaxCapacity
// optional; zero values fall back to the class definition.
type CreateSlotRequest struct {
	ID              string `json:"id" binding:"required,max=64"`
	ClassID         string `json:"classId" binding:"required"`
	Day             string `json:"day" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"gte=0"`
	InstructorID    string `json:"instructorId"`
	MaxCapacity     int    `json:"maxCapacity" binding:"gte=0"`
}

type ScheduleResponse struct {
	Schedule []EnrichedSlot `json:"schedule"`
}

type SlotResponse struct {
	Slot *EnrichedSlot `json:"slot"`
}
