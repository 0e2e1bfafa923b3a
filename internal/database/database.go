package database

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eldon922/ekklesia-be/internal/config"
	"github.com/eldon922/ekklesia-be/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	slog.Info("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&models.Event{},
		&models.Attendee{},
	); err != nil {
		slog.Error("failed to auto-migrate", "err", err)
		os.Exit(1)
	}
	slog.Info("database migrated")
}
