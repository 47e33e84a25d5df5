package database

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/configs"
)

var DB *gorm.DB

func ConnectDB() {
	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=parish-backend&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // needed for transaction-pooling PgBouncer
	}), &gorm.Config{})
	if err != nil {
		configs.Log.Fatalf("database connection failed: %v", err)
	}

	DB = db
	configs.Log.Info("database connected")
}

// TunePool keeps the pool small enough for managed Postgres tiers.
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		configs.Log.Errorf("pool tuning skipped: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
