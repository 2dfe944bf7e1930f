package catalog

import (
	"net/http"

	"boxgym/internal/api"
	"boxgym/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListClasses godoc
// @Summary      List classes
// @Tags         catalog
// @Produce      json
// @Success      200 {object} catalog.ClassesResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context())
	if err != nil {
		logger.Error("Error fetching classes", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch classes"})
		return
	}

	c.JSON(http.StatusOK, ClassesResponse{Classes: classes})
}

// ListTrainers godoc
// @Summary      List trainers
// @Tags         catalog
// @Produce      json
// @Success      200 {object} catalog.TrainersResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	trainers, err := h.service.ListTrainers(c.Request.Context())
	if err != nil {
		logger.Error("Error fetching trainers", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainers"})
		return
	}

	c.JSON(http.StatusOK, TrainersResponse{Trainers: trainers})
}

// ListTestimonials godoc
// @Summary      List testimonials
// @Tags         catalog
// @Produce      json
// @Success      200 {object} catalog.TestimonialsResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /testimonials [get]
func (h *Handler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.service.ListTestimonials(c.Request.Context())
	if err != nil {
		logger.Error("Error fetching testimonials", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch testimonials"})
		return
	}

	c.JSON(http.StatusOK, TestimonialsResponse{Testimonials: testimonials})
}
