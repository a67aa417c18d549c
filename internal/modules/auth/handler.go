package auth

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", h.Signup)
	rg.POST("/auth/login", h.Login)
}

// RegisterProfileRoutes mounts the profile editor behind the auth middleware.
func (h *Handler) RegisterProfileRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.GetProfile)
	rg.PATCH("/profile", h.UpdateProfile)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		writeAuthError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"username": res.Username,
		"role":     res.Role,
		"token":    res.Token,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeAuthError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"username": res.Username,
		"role":     res.Role,
		"token":    res.Token,
	})
}

func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.GetString("username"))
	if err != nil {
		writeAuthError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	profile, token, err := h.service.UpdateProfile(c.Request.Context(), c.GetString("username"), req)
	if err != nil {
		writeAuthError(c, err)
		return
	}

	data := gin.H{"profile": profile}
	if token != "" {
		data["token"] = token
	}
	response.Success(c, http.StatusOK, data)
}

func writeAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
	case errors.Is(err, ErrWrongPassword):
		response.Error(c, http.StatusUnauthorized, "VERIFICATION_FAILED", "Current password does not match")
	case errors.Is(err, ErrUsernameTaken):
		response.Error(c, http.StatusConflict, "USERNAME_TAKEN", "Username already exists")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Profile not found")
	default:
		response.Error(c, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Operation failed, please try again")
	}
}
