package database

import (
	"fmt"

	"oktodeck-backend/internal/config"
	"oktodeck-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) error {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}

	err = DB.AutoMigrate(
		&models.MetaEntry{},
		&models.StockItem{},
		&models.UsageEntry{},
		&models.Notification{},
		&models.CustomBox{},
		&models.DeckOrderItem{},
		&models.Task{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	return nil
}
