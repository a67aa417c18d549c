package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Actor identifies who is attempting a booking mutation. Administrators act
// as a single capability role without individual identity.
type Actor struct {
	Username string
	Role     Role
}

// Booking keeps a snapshot of the car's display name at creation time so
// historical bookings stay readable after the car is edited or deleted.
type Booking struct {
	ID            string        `json:"id"`
	CarID         string        `json:"car_id" validate:"required,uuid"`
	CarModel      string        `json:"car_model"`
	CustomerName  string        `json:"customer_name" validate:"required"`
	ContactNumber string        `json:"contact_number" validate:"required"`
	Email         string        `json:"email" validate:"required,email"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	PickupDate    string        `json:"pickup_date" validate:"required"`
	ReturnDate    string        `json:"return_date" validate:"required"`
	TotalPrice    float64       `json:"total_price"`
	PaymentMethod string        `json:"payment_method" validate:"required"`
	Status        BookingStatus `json:"status"`
	Username      string        `json:"username"`
	CreatedAt     time.Time     `json:"created_at"`

	// Joined car record for the admin view. Nil when the car was deleted.
	Car *Car `json:"car,omitempty"`
}
