package config

import (
	"fmt"
	"log"

	"github.com/Makai-Stern/shoppingify-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		C.DBHost,
		C.DBUser,
		C.DBPassword,
		C.DBName,
		C.DBPort,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Category{},
		&models.Cart{},
		&models.CartFood{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
