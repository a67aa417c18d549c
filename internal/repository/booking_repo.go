package repository

import (
	"context"
	"time"

	"carrental/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// The store keeps two date column pairs for the same range; both are written
// on insert and kept equal.
type bookingModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	CarID         string    `gorm:"column:car_id"`
	CarModel      string    `gorm:"column:car_model"`
	CustomerName  string    `gorm:"column:customer_name"`
	ContactNumber string    `gorm:"column:contact_number"`
	Email         string    `gorm:"column:email"`
	StartDate     string    `gorm:"column:start_date"`
	EndDate       string    `gorm:"column:end_date"`
	PickupDate    string    `gorm:"column:pickup_date"`
	ReturnDate    string    `gorm:"column:return_date"`
	TotalPrice    float64   `gorm:"column:total_price"`
	PaymentMethod string    `gorm:"column:payment_method"`
	Status        string    `gorm:"column:status"`
	Username      string    `gorm:"column:username"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:            m.ID,
		CarID:         m.CarID,
		CarModel:      m.CarModel,
		CustomerName:  m.CustomerName,
		ContactNumber: m.ContactNumber,
		Email:         m.Email,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		PickupDate:    m.PickupDate,
		ReturnDate:    m.ReturnDate,
		TotalPrice:    m.TotalPrice,
		PaymentMethod: m.PaymentMethod,
		Status:        domain.BookingStatus(m.Status),
		Username:      m.Username,
		CreatedAt:     m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		CarID:         b.CarID,
		CarModel:      b.CarModel,
		CustomerName:  b.CustomerName,
		ContactNumber: b.ContactNumber,
		Email:         b.Email,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		PickupDate:    b.PickupDate,
		ReturnDate:    b.ReturnDate,
		TotalPrice:    b.TotalPrice,
		PaymentMethod: b.PaymentMethod,
		Status:        string(b.Status),
		Username:      b.Username,
		CreatedAt:     b.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByUsername(ctx context.Context, username string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&bookingModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
