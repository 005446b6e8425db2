package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database. TranslateError is enabled so
// unique-constraint violations surface as gorm.ErrDuplicatedKey for both
// drivers.
func Open(driver, dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), config)
	case "postgres":
		return gorm.Open(postgres.Open(dsn), config)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}
}

// Migrate ensures the users table exists. AutoMigrate is idempotent: it is
// a no-op against an existing table and never drops data.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(&UserModel{})
}
