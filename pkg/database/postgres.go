package database

import (
	"fmt"
	"time"

	"estatehub/config"
	"estatehub/internal/domain/chat"
	"estatehub/internal/domain/property"
	"estatehub/internal/domain/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the postgres connection and returns the handle. The handle is
// passed explicitly into repositories; there is no package-level singleton.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surfaces constraint violations as gorm.ErrForeignKeyViolated /
		// ErrDuplicatedKey so repositories can map them to the error taxonomy.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get generic database object: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate applies the table schema for every entity this service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&property.Property{},
		&property.Image{},
		&chat.Chat{},
		&chat.ChatUser{},
		&chat.Message{},
	)
}

// HealthCheck pings the underlying connection.
func HealthCheck(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
