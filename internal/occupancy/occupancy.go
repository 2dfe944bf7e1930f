// Package occupancy serves a simulated live head count for the gym floor.
// The numbers are decorative and not derived from bookings.
package occupancy

import (
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	Capacity      = 40
	baseOccupancy = 15
	maxJitter     = 8
)

type Snapshot struct {
	Current     int       `json:"current" example:"27"`
	Capacity    int       `json:"capacity" example:"40"`
	Percentage  int       `json:"percentage" example:"68"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Level returns the head count for an hour of day plus jitter, capped at Capacity.
func Level(hour, jitter int) int {
	count := baseOccupancy
	switch {
	case hour >= 6 && hour <= 8:
		count += 15
	case hour >= 12 && hour <= 14:
		count += 10
	case hour >= 17 && hour <= 20:
		count += 20
	}
	return min(Capacity, count+jitter)
}

type Estimator struct {
	now    func() time.Time
	jitter func() int
}

func NewEstimator() *Estimator {
	return &Estimator{
		now:    time.Now,
		jitter: func() int { return rand.Intn(maxJitter) },
	}
}

func (e *Estimator) Estimate() Snapshot {
	now := e.now()
	current := Level(now.Hour(), e.jitter())
	return Snapshot{
		Current:     current,
		Capacity:    Capacity,
		Percentage:  int(math.Round(float64(current) / Capacity * 100)),
		LastUpdated: now.UTC(),
	}
}

// GetOccupancy godoc
// @Summary      Gym occupancy
// @Description  Simulated current head count on the gym floor.
// @Tags         system
// @Produce      json
// @Success      200 {object} occupancy.Snapshot
// @Router       /occupancy [get]
func (e *Estimator) GetOccupancy(c *gin.Context) {
	c.JSON(http.StatusOK, e.Estimate())
}
