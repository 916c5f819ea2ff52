package database

import (
	"errors"

	"github.com/campushub/campus-hub/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and migrates the schema. TranslateError maps
// driver unique-violations onto gorm.ErrDuplicatedKey for the interest
// duplicate backstop.
func Connect(dsn string) (*Database, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Interest{}, &models.Slot{})
	if err != nil {
		return nil, err
	}

	return NewDatabase(db), nil
}
