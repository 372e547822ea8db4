package postgres

import (
	"fmt"
	"log"
	"time"

	"transactions-service/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection открывает соединение с PostgreSQL через GORM и выполняет миграции
func NewConnection(cfg *config.Config) (*gorm.DB, error) {
	return Open(cfg.DB.PostgresDSN(), cfg.App.Debug)
}

// Open открывает соединение по готовой строке DSN
func Open(dsn string, debug bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := runMigrations(db); err != nil {
		sqlDB.Close()
		return nil, err
	}

	log.Println("PostgreSQL connection established")
	return db, nil
}

func runMigrations(db *gorm.DB) error {
	log.Println("Running migrations...")
	if err := db.AutoMigrate(&transactionRow{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
