package booking

type CreateBookingRequest struct {
	CarID         string `json:"car_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	ContactNumber string `json:"contact_number" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	PickupDate    string `json:"pickup_date" binding:"required"`
	ReturnDate    string `json:"return_date" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}
