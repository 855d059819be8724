// Package db owns the database connection and schema migrations.
package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the gorm connection the repositories run on.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
