package contact

import (
	"log"
	"net/http"

	"carrental/internal/pkg/mailer"
	"carrental/internal/pkg/response"
	"carrental/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required" validate:"max=120"`
	Email   string `json:"email" binding:"required,email" validate:"max=254"`
	Message string `json:"message" binding:"required" validate:"max=4000"`
}

type Handler struct {
	sender mailer.Sender
}

func NewHandler(sender mailer.Sender) *Handler {
	return &Handler{sender: sender}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.SendMessage)
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name, email and message are required")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Message fields are too long", errs)
		return
	}

	if h.sender == nil {
		response.Error(c, http.StatusServiceUnavailable, "MAIL_DISABLED", "Contact form is not configured")
		return
	}

	err := h.sender.Send(c.Request.Context(), map[string]string{
		"from_name":  req.Name,
		"from_email": req.Email,
		"message":    req.Message,
	})
	if err != nil {
		// No automatic retry; the user is told and re-triggers.
		log.Println("mail relay send failed:", err)
		response.Error(c, http.StatusBadGateway, "MAIL_RELAY_FAILED", "Failed to send message. Please try again later.")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sent": true})
}
