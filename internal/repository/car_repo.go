package repository

import (
	"context"
	"time"

	"carrental/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarRepository persists the car collection. Updates are last-write-wins;
// there is no optimistic locking.
type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

type carModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Photo     *string   `gorm:"column:photo"`
	Details   *string   `gorm:"column:details"`
	Price     float64   `gorm:"column:price"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (carModel) TableName() string { return "car" }

func toDomainCar(m carModel) *domain.Car {
	c := &domain.Car{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Photo != nil {
		c.Photo = *m.Photo
	}
	if m.Details != nil {
		c.Details = *m.Details
	}
	return c
}

func toCarModel(c *domain.Car) carModel {
	m := carModel{
		ID:        c.ID,
		Name:      c.Name,
		Price:     c.Price,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Photo != "" {
		v := c.Photo
		m.Photo = &v
	}
	if c.Details != "" {
		v := c.Details
		m.Details = &v
	}
	return m
}

func (r *CarRepository) Create(ctx context.Context, c *domain.Car) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m := toCarModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCar(m)
	return nil
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	var m carModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCar(m), nil
}

func (r *CarRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Car, error) {
	out := make(map[string]*domain.Car, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var ms []carModel
	tx := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	for _, m := range ms {
		out[m.ID] = toDomainCar(m)
	}
	return out, nil
}

func (r *CarRepository) List(ctx context.Context) ([]domain.Car, error) {
	var ms []carModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Car, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainCar(m))
	}
	return out, nil
}

func (r *CarRepository) Update(ctx context.Context, c *domain.Car) error {
	m := toCarModel(c)
	m.UpdatedAt = time.Now()
	tx := r.db.WithContext(ctx).Model(&carModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"name":       m.Name,
		"photo":      m.Photo,
		"details":    m.Details,
		"price":      m.Price,
		"updated_at": m.UpdatedAt,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	c.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&carModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
