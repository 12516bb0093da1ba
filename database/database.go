package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/avasquez/products-api/models"
)

// Connect opens the store and creates the products table. An empty dsn
// selects an in-memory sqlite database, whose contents are lost when the
// process exits; a non-empty dsn is treated as a Postgres connection URL.
func Connect(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn == "" {
		dialector = sqlite.Open(":memory:")
	} else {
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
