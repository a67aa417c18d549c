package repository

import "gorm.io/gorm"

// Migrate creates the three collections. The hosted store owns the schema in
// production; this exists for seeding and the test suites.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&carModel{}, &bookingModel{}, &profileModel{})
}
