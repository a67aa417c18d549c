package repository

import (
	"context"

	"carrental/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type profileModel struct {
	Username     string `gorm:"column:username;primaryKey"`
	FullName     string `gorm:"column:full_name"`
	Age          int    `gorm:"column:age"`
	Citizenship  string `gorm:"column:citizenship"`
	Gender       string `gorm:"column:gender"`
	PasswordHash string `gorm:"column:password"`
}

func (profileModel) TableName() string { return "profiles" }

func toDomainProfile(m profileModel) *domain.Profile {
	return &domain.Profile{
		Username:     m.Username,
		FullName:     m.FullName,
		Age:          m.Age,
		Citizenship:  m.Citizenship,
		Gender:       m.Gender,
		PasswordHash: m.PasswordHash,
	}
}

func toProfileModel(p *domain.Profile) profileModel {
	return profileModel{
		Username:     p.Username,
		FullName:     p.FullName,
		Age:          p.Age,
		Citizenship:  p.Citizenship,
		Gender:       p.Gender,
		PasswordHash: p.PasswordHash,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	m := toProfileModel(p)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	var m profileModel
	tx := r.db.WithContext(ctx).Where("username = ?", username).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProfile(m), nil
}

func (r *ProfileRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&profileModel{}).
		Where("username = ?", username).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// Update rewrites the profile row keyed by oldUsername. A rename rewrites
// booking ownership in the same transaction so owner lookups stay
// consistent; a rename collision surfaces as the store's unique-constraint
// error for the caller to map.
func (r *ProfileRepository) Update(ctx context.Context, oldUsername string, p *domain.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toProfileModel(p)

		if p.Username != oldUsername {
			if err := tx.Model(&profileModel{}).
				Where("username = ?", oldUsername).
				Update("username", p.Username).Error; err != nil {
				return err
			}
			if err := tx.Model(&bookingModel{}).
				Where("username = ?", oldUsername).
				Update("username", p.Username).Error; err != nil {
				return err
			}
		}

		res := tx.Model(&profileModel{}).Where("username = ?", p.Username).Updates(map[string]any{
			"full_name":   m.FullName,
			"age":         m.Age,
			"citizenship": m.Citizenship,
			"gender":      m.Gender,
			"password":    m.PasswordHash,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
