package db

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hws-kobayashi-ukyo/coffee/internal/models"
)

var DB *gorm.DB

// Init opens (or creates) the local database file and migrates the schema.
func Init(path string) {

	var err error

	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})

	if err != nil {
		log.Fatalf("Failed to open database %s: %v", path, err)
	}

	err = DB.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	)

	if err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	log.Println("Database opened and migrated successfully")
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}
