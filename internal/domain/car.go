package domain

import "time"

// Car is an inventory item. Identifiers are UUID strings because bookings
// keep them as references even after the car row is gone.
type Car struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Photo     string    `json:"photo,omitempty"`
	Details   string    `json:"details,omitempty"`
	Price     float64   `json:"price" validate:"gte=0"` // weekly rate
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
