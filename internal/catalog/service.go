package catalog

import (
	"context"
	"errors"
	"fmt"
)

var ErrClassNotFound = errors.New("class not found")

type Service interface {
	ListClasses(ctx context.Context) ([]ClassDefinition, error)
	ListTrainers(ctx context.Context) ([]Trainer, error)
	ListTestimonials(ctx context.Context) ([]Testimonial, error)
	GetClass(ctx context.Context, id string) (*ClassDefinition, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListClasses(ctx context.Context) ([]ClassDefinition, error) {
	classes, err := s.repo.GetClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("load classes: %w", err)
	}
	return classes, nil
}

func (s *service) ListTrainers(ctx context.Context) ([]Trainer, error) {
	trainers, err := s.repo.GetTrainers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trainers: %w", err)
	}
	return trainers, nil
}

func (s *service) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	testimonials, err := s.repo.GetTestimonials(ctx)
	if err != nil {
		return nil, fmt.Errorf("load testimonials: %w", err)
	}
	return testimonials, nil
}

func (s *service) GetClass(ctx context.Context, id string) (*ClassDefinition, error) {
	classes, err := s.ListClasses(ctx)
	if err != nil {
		return nil, err
	}
	for i := range classes {
		if classes[i].ID == id {
			return &classes[i], nil
		}
	}
	return nil, ErrClassNotFound
}
