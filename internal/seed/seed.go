// Package seed loads the gym's starter catalog and weekly schedule.
// Seeding never overwrites: existing keys and slots keep their live booking counts.
package seed

import (
	"context"
	"fmt"
	"net/http"

	"boxgym/internal/api"
	"boxgym/internal/catalog"
	"boxgym/internal/logger"
	"boxgym/internal/schedule"

	"github.com/gin-gonic/gin"
)

type Result struct {
	Classes      bool `json:"classes"`
	Trainers     bool `json:"trainers"`
	Testimonials bool `json:"testimonials"`
	Slots        int  `json:"slots"`
}

type Seeder struct {
	catalog  catalog.Repository
	schedule schedule.Repository
}

func New(catalogRepo catalog.Repository, scheduleRepo schedule.Repository) *Seeder {
	return &Seeder{catalog: catalogRepo, schedule: scheduleRepo}
}

func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	var (
		res Result
		err error
	)

	if res.Classes, err = s.catalog.SeedClasses(ctx, Classes()); err != nil {
		return nil, fmt.Errorf("seed classes: %w", err)
	}
	if res.Trainers, err = s.catalog.SeedTrainers(ctx, Trainers()); err != nil {
		return nil, fmt.Errorf("seed trainers: %w", err)
	}
	if res.Testimonials, err = s.catalog.SeedTestimonials(ctx, Testimonials()); err != nil {
		return nil, fmt.Errorf("seed testimonials: %w", err)
	}
	if res.Slots, err = s.schedule.SeedSlots(ctx, Slots()); err != nil {
		return nil, fmt.Errorf("seed schedule: %w", err)
	}

	logger.Info("Seed complete",
		"classes", res.Classes,
		"trainers", res.Trainers,
		"testimonials", res.Testimonials,
		"slots", res.Slots,
	)
	return &res, nil
}

// RunAsync seeds in the background. Failures are logged only.
func (s *Seeder) RunAsync(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := s.Run(ctx); err != nil {
			logger.Error("Background seed failed", "error", err)
		}
	}()
	return done
}

// HandleSeed godoc
// @Summary      Seed data
// @Description  Loads starter classes, trainers, testimonials and schedule. Existing data is kept. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} api.MessageResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/seed [post]
func (s *Seeder) HandleSeed(c *gin.Context) {
	if _, err := s.Run(c.Request.Context()); err != nil {
		logger.Error("Initialization error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to initialize data"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "Data initialized successfully"})
}
