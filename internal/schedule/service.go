package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"boxgym/internal/catalog"
	"boxgym/internal/metrics"
)

var (
	ErrSlotExists   = errors.New("schedule slot already exists")
	ErrInvalidSlot  = errors.New("invalid schedule slot")
	ErrUnknownClass = errors.New("class does not exist")
)

const (
	unknownClassName   = "Unknown Class"
	unknownClassLevel  = "unknown"
	unknownTrainerName = "Unknown Trainer"
)

type Service interface {
	ListSchedule(ctx context.Context, filter Filter) ([]EnrichedSlot, error)
	GetSlot(ctx context.Context, id string) (*EnrichedSlot, error)
	CreateSlot(ctx context.Context, req CreateSlotRequest) (*EnrichedSlot, error)
}

type service struct {
	repo    Repository
	catalog catalog.Service
}

func NewService(repo Repository, catalogService catalog.Service) Service {
	return &service{repo: repo, catalog: catalogService}
}

type lookup struct {
	classes  map[string]catalog.ClassDefinition
	trainers map[string]catalog.Trainer
}

func (s *service) loadLookup(ctx context.Context) (*lookup, error) {
	classes, err := s.catalog.ListClasses(ctx)
	if err != nil {
		return nil, err
	}
	trainers, err := s.catalog.ListTrainers(ctx)
	if err != nil {
		return nil, err
	}

	l := &lookup{
		classes:  make(map[string]catalog.ClassDefinition, len(classes)),
		trainers: make(map[string]catalog.Trainer, len(trainers)),
	}
	for _, c := range classes {
		l.classes[c.ID] = c
	}
	for _, t := range trainers {
		l.trainers[t.ID] = t
	}
	return l, nil
}

func (l *lookup) enrich(slot Slot) EnrichedSlot {
	out := EnrichedSlot{
		Slot:           slot,
		ClassName:      unknownClassName,
		ClassLevel:     unknownClassLevel,
		TrainerName:    unknownTrainerName,
		SpotsAvailable: slot.SpotsAvailable(),
		IsFull:         slot.IsFull(),
	}
	if class, ok := l.classes[slot.ClassID]; ok {
		out.ClassName = class.Name
		out.ClassLevel = string(class.Level)
	}
	if trainer, ok := l.trainers[slot.InstructorID]; ok {
		out.TrainerName = trainer.Name
	}
	return out
}

func (s *service) ListSchedule(ctx context.Context, filter Filter) ([]EnrichedSlot, error) {
	slots, err := s.repo.ListSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	l, err := s.loadLookup(ctx)
	if err != nil {
		return nil, err
	}

	sortSlots(slots)

	result := make([]EnrichedSlot, 0, len(slots))
	for _, slot := range slots {
		enriched := l.enrich(slot)
		metrics.RecordSpotsAvailable(slot.ID, enriched.SpotsAvailable)
		if filter.matches(enriched) {
			result = append(result, enriched)
		}
	}

	return result, nil
}

func (s *service) GetSlot(ctx context.Context, id string) (*EnrichedSlot, error) {
	slot, err := s.repo.GetSlot(ctx, id)
	if err != nil {
		return nil, err
	}

	l, err := s.loadLookup(ctx)
	if err != nil {
		return nil, err
	}

	enriched := l.enrich(*slot)
	return &enriched, nil
}

func (s *service) CreateSlot(ctx context.Context, req CreateSlotRequest) (*EnrichedSlot, error) {
	day := catalog.Weekday(req.Day)
	if !day.Valid() {
		return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidSlot, req.Day)
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, fmt.Errorf("%w: time must be HH:MM", ErrInvalidSlot)
	}

	l, err := s.loadLookup(ctx)
	if err != nil {
		return nil, err
	}

	class, ok := l.classes[req.ClassID]
	if !ok {
		return nil, ErrUnknownClass
	}

	slot := Slot{
		ID:              req.ID,
		ClassID:         class.ID,
		Day:             day,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		InstructorID:    req.InstructorID,
		MaxCapacity:     req.MaxCapacity,
	}
	if slot.DurationMinutes == 0 {
		slot.DurationMinutes = class.DurationMinutes
	}
	if slot.InstructorID == "" {
		slot.InstructorID = class.InstructorID
	}
	if slot.MaxCapacity == 0 {
		slot.MaxCapacity = class.MaxCapacity
	}
	if slot.MaxCapacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidSlot)
	}

	created, err := s.repo.CreateSlot(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("store slot: %w", err)
	}
	if !created {
		return nil, ErrSlotExists
	}

	enriched := l.enrich(slot)
	return &enriched, nil
}

// sortSlots orders by weekday, then time of day, then id.
func sortSlots(slots []Slot) {
	sort.Slice(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		if da, db := a.Day.Index(), b.Day.Index(); da != db {
			return da < db
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.ID < b.ID
	})
}
