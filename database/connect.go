package database

import (
	"fmt"
	"log"

	"carbon_zero/config"
	"carbon_zero/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectDB(cfg config.App) {
	db, err := Open(cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	log.Println("Connection Opened to Database")

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	log.Println("Database Migrated")

	SeedData(db, cfg)
	DB = db
}

func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserType{},
		&model.User{},
		&model.News{},
		&model.Board{},
		&model.Discussion{},
		&model.DiscussionInteraction{},
		&model.CarbonDonation{},
		&model.Hotel{},
		&model.Room{},
		&model.Booking{},
		&model.Event{},
		&model.EventBooking{},
	)
}
