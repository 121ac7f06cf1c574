package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and runs the schema migration. TranslateError is
// on so unique-constraint violations surface as gorm.ErrDuplicatedKey across
// drivers.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the users, sessions, and follows tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{}, &SessionModel{}, &FollowModel{})
}
