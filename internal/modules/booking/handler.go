package booking

import (
	"errors"
	"net/http"

	"carrental/internal/domain"
	"carrental/internal/pkg/pricing"
	"carrental/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.MyBookings)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	username := c.GetString("username")
	b, err := h.service.CreateBooking(c.Request.Context(), req, username)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) MyBookings(c *gin.Context) {
	username := c.GetString("username")
	list, err := h.service.ListForOwner(c.Request.Context(), username)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	actor := domain.Actor{
		Username: c.GetString("username"),
		Role:     domain.Role(c.GetString("role")),
	}

	b, err := h.service.Transition(c.Request.Context(), c.Param("id"), actor, domain.BookingCancelled)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrInvalidCarReference):
		response.Error(c, http.StatusBadRequest, "INVALID_CAR_REFERENCE", "Selected car has an invalid id. Refresh and try again.")
	case errors.Is(err, pricing.ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Dates must use the YYYY-MM-DD format")
	case errors.Is(err, pricing.ErrInvalidRange):
		response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "Return date must be after pickup date")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot modify this booking")
	case errors.Is(err, ErrIllegalTransition):
		response.Error(c, http.StatusConflict, "ILLEGAL_TRANSITION", "Booking status does not allow this action")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Operation failed, please try again")
	}
}
