package contact

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

// SubmitContact godoc
// @Summary      Submit contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request body contact.ContactRequest true "Contact form"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /contact [post]
func (h *Handler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	if _, err := h.service.SubmitContact(c.Request.Context(), req); err != nil {
		logger.Error("Contact form error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to submit contact form"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "Contact form submitted successfully"})
}

// SubscribeNewsletter godoc
// @Summary      Subscribe to newsletter
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request body contact.NewsletterRequest true "Subscriber"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /newsletter [post]
func (h *Handler) SubscribeNewsletter(c *gin.Context) {
	var req NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	if _, err := h.service.SubscribeNewsletter(c.Request.Context(), req.Email); err != nil {
		logger.Error("Newsletter signup error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to subscribe to newsletter"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "Successfully subscribed to newsletter"})
}
