package profile

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

// GetProfile godoc
// @Summary      Get profile
// @Description  Returns the caller's profile with their bookings.
// @Tags         profile
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} profile.ProfileResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Authentication required"})
		return
	}

	p, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Profile not found"})
			return
		}
		logger.Error("Profile fetch error", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Profile: p})
}

// CreateProfile godoc
// @Summary      Create profile
// @Description  Initializes the caller's profile. Email defaults to the token's email. Calling again replaces the profile.
// @Tags         profile
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body profile.CreateProfileRequest false "Profile fields"
// @Success      201 {object} profile.ProfileResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /profile [post]
func (h *Handler) CreateProfile(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok || identity.UserID == "" {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req CreateProfileRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			api.RespondBindError(c, err)
			return
		}
	}

	email := req.Email
	if email == "" {
		email = identity.Email
	}

	p, err := h.service.CreateProfile(c.Request.Context(), identity.UserID, email, req.Name)
	if err != nil {
		if errors.Is(err, ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email is required"})
			return
		}
		logger.Error("Profile create error", "user_id", identity.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, ProfileResponse{Profile: p})
}
