package booking

import (
	"errors"
	"net/http"

	"boxgym/internal/api"
	"boxgym/internal/auth"
	"boxgym/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func customerFrom(c *gin.Context) (Customer, bool) {
	identity, ok := auth.GetIdentity(c)
	if !ok || identity.UserID == "" {
		return Customer{}, false
	}
	return Customer{ID: identity.UserID, Email: identity.Email}, true
}

// BookClass godoc
// @Summary      Book a class
// @Description  Claims one seat on a schedule slot for the authenticated user.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body booking.BookClassRequest true "Slot to book"
// @Success      201 {object} booking.BookingResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) BookClass(c *gin.Context) {
	customer, ok := customerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req BookClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	b, err := h.service.BookClass(c.Request.Context(), customer, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingSlotID):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Schedule slot ID is required"})
		case errors.Is(err, ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Schedule slot not found"})
		case errors.Is(err, ErrCapacityExceeded):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Class is full"})
		case errors.Is(err, ErrAlreadyBooked):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "You already have a booking for this class"})
		default:
			logger.Error("Error booking class", "user_id", customer.ID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to book class"})
		}
		return
	}

	c.JSON(http.StatusCreated, BookingResponse{Success: true, Booking: b})
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Description  Cancels a confirmed booking of the current user and releases the seat.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID path string true "Booking ID"
// @Success      200 {object} booking.BookingResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	customer, ok := customerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), customer, c.Param("bookingID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		case errors.Is(err, ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You can only cancel your own bookings"})
		case errors.Is(err, ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Booking already cancelled"})
		default:
			logger.Error("Error cancelling booking", "user_id", customer.ID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, BookingResponse{Success: true, Booking: b})
}

// ListMyBookings godoc
// @Summary      List my bookings
// @Description  Returns bookings of the authenticated user in booking order.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} booking.BookingsResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	customer, ok := customerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookings, err := h.service.ListUserBookings(c.Request.Context(), customer.ID)
	if err != nil {
		logger.Error("Error fetching bookings", "user_id", customer.ID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, BookingsResponse{Bookings: bookings})
}

// ListSlotBookings godoc
// @Summary      List bookings by slot
// @Description  Returns the active bookings on a schedule slot. Admin only.
// @Tags         admin,bookings
// @Security     BearerAuth
// @Produce      json
// @Param        slotID path string true "Slot ID"
// @Success      200 {object} booking.BookingsResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/schedule/{slotID}/bookings [get]
func (h *Handler) ListSlotBookings(c *gin.Context) {
	bookings, err := h.service.ListSlotBookings(c.Request.Context(), c.Param("slotID"))
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Schedule slot not found"})
			return
		}
		logger.Error("Error fetching slot bookings", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, BookingsResponse{Bookings: bookings})
}
