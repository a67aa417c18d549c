package domain

// Profile is keyed by username. The username is user-editable; renames are
// handled transactionally by the repository so booking ownership follows.
type Profile struct {
	Username     string `json:"username" validate:"required"`
	FullName     string `json:"full_name" validate:"required"`
	Age          int    `json:"age" validate:"gte=18"`
	Citizenship  string `json:"citizenship" validate:"required"`
	Gender       string `json:"gender" validate:"required"`
	PasswordHash string `json:"-"`
}
