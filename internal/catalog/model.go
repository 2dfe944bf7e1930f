package catalog

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelYouth        Level = "youth"
	LevelSparring     Level = "sparring"
	LevelBootcamp     Level = "bootcamp"
	LevelOpenGym      Level = "open-gym"
)

func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelYouth,
		LevelSparring, LevelBootcamp, LevelOpenGym:
		return true
	}
	return false
}

// Weekday is a full English day name, e.g. "Monday".
type Weekday string

var weekdays = []Weekday{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Weekday) Valid() bool {
	return d.Index() >= 0
}

// Index orders days Monday first; -1 for an unknown day.
func (d Weekday) Index() int {
	for i, w := range weekdays {
		if w == d {
			return i
		}
	}
	return -1
}

type ClassDefinition struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Level           Level   `json:"level"`
	DurationMinutes int     `json:"durationMinutes"`
	MaxCapacity     int     `json:"maxCapacity"`
	Price           float64 `json:"price"`
	InstructorID    string  `json:"instructorId"`
}

type Trainer struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Bio             string    `json:"bio"`
	Specialties     []string  `json:"specialties"`
	ExperienceYears int       `json:"experienceYears"`
	HourlyRate      float64   `json:"hourlyRate"`
	AvailableDays   []Weekday `json:"availableDays"`
}

type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
	Program  string `json:"program"`
}

type ClassesResponse struct {
	Classes []ClassDefinition `json:"classes"`
}

type TrainersResponse struct {
	Trainers []Trainer `json:"trainers"`
}

type TestimonialsResponse struct {
	Testimonials []Testimonial `json:"testimonials"`
}
