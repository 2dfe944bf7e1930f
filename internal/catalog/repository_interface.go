package catalog

import "context"

type Repository interface {
	GetClasses(ctx context.Context) ([]ClassDefinition, error)
	GetTrainers(ctx context.Context) ([]Trainer, error)
	GetTestimonials(ctx context.Context) ([]Testimonial, error)
	// Seed* write the collection only if it does not exist yet and report whether they did.
	SeedClasses(ctx context.Context, classes []ClassDefinition) (bool, error)
	SeedTrainers(ctx context.Context, trainers []Trainer) (bool, error)
	SeedTestimonials(ctx context.Context, testimonials []Testimonial) (bool, error)
}
