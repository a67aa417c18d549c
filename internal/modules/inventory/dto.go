package inventory

type CreateCarRequest struct {
	Name    string `json:"name" binding:"required"`
	Photo   string `json:"photo"`
	Details string `json:"details"`
	Price   string `json:"price" binding:"required"`
}

// UpdateCarRequest only rewrites the fields that were supplied.
type UpdateCarRequest struct {
	Name    *string `json:"name"`
	Photo   *string `json:"photo"`
	Details *string `json:"details"`
	Price   *string `json:"price"`
}
