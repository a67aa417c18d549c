package inventory

import (
	"errors"
	"net/http"

	"carrental/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the read-only catalog used by the marketing
// and booking pages.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/cars", h.ListCars)
	rg.GET("/cars/:id", h.GetCar)
}

// RegisterAdminRoutes exposes inventory mutation, mounted behind the admin
// role gate.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/cars", h.CreateCar)
	rg.PATCH("/cars/:id", h.UpdateCar)
	rg.DELETE("/cars/:id", h.DeleteCar)
}

func (h *Handler) ListCars(c *gin.Context) {
	cars, err := h.service.ListCars(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to load cars")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cars": cars})
}

func (h *Handler) GetCar(c *gin.Context) {
	car, err := h.service.GetCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeInventoryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"car": car})
}

func (h *Handler) CreateCar(c *gin.Context) {
	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	car, err := h.service.CreateCar(c.Request.Context(), req)
	if err != nil {
		writeInventoryError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"car": car})
}

func (h *Handler) UpdateCar(c *gin.Context) {
	var req UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	car, err := h.service.UpdateCar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeInventoryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"car": car})
}

func (h *Handler) DeleteCar(c *gin.Context) {
	if err := h.service.DeleteCar(c.Request.Context(), c.Param("id")); err != nil {
		writeInventoryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func writeInventoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Car not found")
	default:
		response.Error(c, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Operation failed, please try again")
	}
}
