package schedule

import (
	"errors"
	"net/http"

	"boxgym/internal/api"
	"boxgym/internal/catalog"
	"boxgym/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListSchedule godoc
// @Summary      List schedule
// @Description  Bookable slots joined with class and trainer names, with seats left.
// @Tags         schedule
// @Produce      json
// @Param        day   query string false "Weekday filter, e.g. Monday"
// @Param        level query string false "Class level filter, e.g. beginner"
// @Success      200 {object} schedule.ScheduleResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /schedule [get]
func (h *Handler) ListSchedule(c *gin.Context) {
	filter := Filter{
		Day:   catalog.Weekday(c.Query("day")),
		Level: catalog.Level(c.Query("level")),
	}
	if filter.Day != "" && !filter.Day.Valid() {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid day filter"})
		return
	}
	if filter.Level != "" && !filter.Level.Valid() {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid level filter"})
		return
	}

	slots, err := h.service.ListSchedule(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Error fetching schedule", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch schedule"})
		return
	}

	c.JSON(http.StatusOK, ScheduleResponse{Schedule: slots})
}

// GetSlot godoc
// @Summary      Get schedule slot
// @Tags         schedule
// @Produce      json
// @Param        slotID path string true "Slot ID"
// @Success      200 {object} schedule.SlotResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /schedule/{slotID} [get]
func (h *Handler) GetSlot(c *gin.Context) {
	slot, err := h.service.GetSlot(c.Request.Context(), c.Param("slotID"))
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Schedule slot not found"})
			return
		}
		logger.Error("Error fetching slot", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch schedule slot"})
		return
	}

	c.JSON(http.StatusOK, SlotResponse{Slot: slot})
}

// CreateSlot godoc
// @Summary      Create schedule slot
// @Description  Admin-only. Missing duration, capacity and instructor default to the class.
// @Tags         admin,schedule
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body schedule.CreateSlotRequest true "Slot payload"
// @Success      201 {object} schedule.SlotResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/schedule [post]
func (h *Handler) CreateSlot(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	slot, err := h.service.CreateSlot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrUnknownClass):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Class not found"})
		case errors.Is(err, ErrSlotExists):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Schedule slot already exists"})
		default:
			logger.Error("Error creating slot", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create schedule slot"})
		}
		return
	}

	c.JSON(http.StatusCreated, SlotResponse{Slot: slot})
}
