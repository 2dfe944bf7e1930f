package server

import (
	"context"
	"net/http"
	"time"

	"boxgym/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "3rd Street Boxing Gym API"

// QueueGauge refreshes the email queue length gauge before a scrape.
type QueueGauge interface {
	QueueLength(ctx context.Context) int64
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   serviceName,
	})
}

// Metrics godoc
// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics(queue QueueGauge) gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		if queue != nil {
			queue.QueueLength(c.Request.Context())
		}
		h.ServeHTTP(c.Writer, c.Request)
	}
}
