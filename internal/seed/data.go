package seed

import (
	"boxgym/internal/catalog"
	"boxgym/internal/schedule"
)

func Classes() []catalog.ClassDefinition {
	return []catalog.ClassDefinition{
		{
			ID:              "beginner-fog-cutter",
			Name:            "Beginner (Fog Cutter)",
			Description:     "From FiDi desk jockeys to Mission artists - find your fit",
			Level:           catalog.LevelBeginner,
			DurationMinutes: 60,
			MaxCapacity:     20,
			Price:           25,
			InstructorID:    "maria-gonzalez",
		},
		{
			ID:              "intermediate-bay-bridger",
			Name:            "Intermediate (Bay Bridger)",
			Description:     "Progress to the next level with advanced combinations",
			Level:           catalog.LevelIntermediate,
			DurationMinutes: 75,
			MaxCapacity:     15,
			Price:           35,
			InstructorID:    "raul-mendoza",
		},
		{
			ID:              "advanced-twin-peaks",
			Name:            "Advanced (Twin Peaks Climber)",
			Description:     "Elite training for competitive boxers",
			Level:           catalog.LevelAdvanced,
			DurationMinutes: 90,
			MaxCapacity:     12,
			Price:           45,
			InstructorID:    "jamal-chen",
		},
	}
}

func Trainers() []catalog.Trainer {
	return []catalog.Trainer{
		{
			ID:              "maria-gonzalez",
			Name:            "Maria 'Mission' Gonzalez",
			Bio:             "5x NorCal Golden Gloves, teaches footwork like a Tango dancer in the Mission",
			Specialties:     []string{"Beginner Training", "Footwork", "Technique"},
			ExperienceYears: 8,
			HourlyRate:      85,
			AvailableDays:   []catalog.Weekday{"Monday", "Wednesday", "Friday"},
		},
		{
			ID:              "raul-mendoza",
			Name:            "Raúl 'The Firewall' Mendoza",
			Bio:             "Trained at King's Gym (Tenderloin) during the '90s. Specialty: Surviving 'Civic Center Clinches'",
			Specialties:     []string{"Defense", "Sparring", "Competition Prep"},
			ExperienceYears: 15,
			HourlyRate:      95,
			AvailableDays:   []catalog.Weekday{"Tuesday", "Thursday", "Saturday"},
		},
		{
			ID:              "jamal-chen",
			Name:            "Jamal 'The Technician' Chen",
			Bio:             "NASM Certified. Transformed 200+ SF tech workers from keyboard warriors to ring warriors",
			Specialties:     []string{"Technical Boxing", "Strength Training", "Form Correction"},
			ExperienceYears: 10,
			HourlyRate:      90,
			AvailableDays:   []catalog.Weekday{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		},
	}
}

func Slots() []schedule.Slot {
	return []schedule.Slot{
		{ID: "mon-6am-beginner", ClassID: "beginner-fog-cutter", Day: "Monday", Time: "06:00", DurationMinutes: 60, InstructorID: "maria-gonzalez", CurrentBookings: 8, MaxCapacity: 20},
		{ID: "mon-7pm-intermediate", ClassID: "intermediate-bay-bridger", Day: "Monday", Time: "19:00", DurationMinutes: 75, InstructorID: "raul-mendoza", CurrentBookings: 12, MaxCapacity: 15},
		{ID: "tue-12pm-beginner", ClassID: "beginner-fog-cutter", Day: "Tuesday", Time: "12:00", DurationMinutes: 60, InstructorID: "maria-gonzalez", CurrentBookings: 15, MaxCapacity: 20},
		{ID: "wed-6pm-advanced", ClassID: "advanced-twin-peaks", Day: "Wednesday", Time: "18:00", DurationMinutes: 90, InstructorID: "jamal-chen", CurrentBookings: 5, MaxCapacity: 12},
	}
}

func Testimonials() []catalog.Testimonial {
	return []catalog.Testimonial{
		{
			ID:       "sarah-soma",
			Name:     "Sarah K.",
			Location: "SoMa",
			Quote:    "Shredded my pandemic 'Dolores Park bod' in 8 weeks! More energizing than Philz coffee.",
			Rating:   5,
			Program:  "Bootcamp",
		},
		{
			ID:       "diego-sunset",
			Name:     "Diego R.",
			Location: "Sunset",
			Quote:    "Went from shy to school champ. Coaches here are like family.",
			Rating:   5,
			Program:  "Youth Boxing",
		},
	}
}
