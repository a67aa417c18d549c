package auth

type SignupRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Age             int    `json:"age" binding:"required"`
	Citizenship     string `json:"citizenship" binding:"required"`
	Gender          string `json:"gender" binding:"required"`
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries only the fields the user touched. The current
// password must be re-supplied before any mutation is applied.
type UpdateProfileRequest struct {
	CurrentPassword string  `json:"current_password" binding:"required"`
	Username        *string `json:"username"`
	FullName        *string `json:"full_name"`
	Age             *int    `json:"age"`
	Citizenship     *string `json:"citizenship"`
	Gender          *string `json:"gender"`
	Password        *string `json:"password"`
}
