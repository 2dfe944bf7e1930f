package catalog

import (
	"context"

	"boxgym/internal/db"

	"github.com/redis/go-redis/v9"
)

type repository struct {
	rdb redis.Cmdable
}

func NewRepository(rdb redis.Cmdable) Repository {
	return &repository{rdb: rdb}
}

func (r *repository) GetClasses(ctx context.Context) ([]ClassDefinition, error) {
	classes := []ClassDefinition{}
	if _, err := db.GetJSON(ctx, r.rdb, db.KeyClasses, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *repository) GetTrainers(ctx context.Context) ([]Trainer, error) {
	trainers := []Trainer{}
	if _, err := db.GetJSON(ctx, r.rdb, db.KeyTrainers, &trainers); err != nil {
		return nil, err
	}
	return trainers, nil
}

func (r *repository) GetTestimonials(ctx context.Context) ([]Testimonial, error) {
	testimonials := []Testimonial{}
	if _, err := db.GetJSON(ctx, r.rdb, db.KeyTestimonials, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *repository) SeedClasses(ctx context.Context, classes []ClassDefinition) (bool, error) {
	return db.SetJSONIfAbsent(ctx, r.rdb, db.KeyClasses, classes)
}

func (r *repository) SeedTrainers(ctx context.Context, trainers []Trainer) (bool, error) {
	return db.SetJSONIfAbsent(ctx, r.rdb, db.KeyTrainers, trainers)
}

func (r *repository) SeedTestimonials(ctx context.Context, testimonials []Testimonial) (bool, error) {
	return db.SetJSONIfAbsent(ctx, r.rdb, db.KeyTestimonials, testimonials)
}
