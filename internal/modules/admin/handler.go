package admin

import (
	"errors"
	"net/http"

	"carrental/internal/modules/booking"
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
	rg.GET("/bookings", h.ListBookings)
	rg.POST("/bookings/:id/approve", h.ApproveBooking)
	rg.POST("/bookings/:id/reject", h.RejectBooking)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
}

func (h *Handler) ListBookings(c *gin.Context) {
	list, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) ApproveBooking(c *gin.Context) {
	b, err := h.service.ApproveBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) RejectBooking(c *gin.Context) {
	b, err := h.service.RejectBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	if err := h.service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func writeAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, booking.ErrIllegalTransition):
		response.Error(c, http.StatusConflict, "ILLEGAL_TRANSITION", "Booking status does not allow this action")
	case errors.Is(err, booking.ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Action not permitted")
	default:
		response.Error(c, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Operation failed, please try again")
	}
}
