package migration

import (
	"fmt"
	"log"

	"Fitlog-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodRecord{}); err != nil {
		log.Fatalf("Error migrating food record database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.QuickEntry{}); err != nil {
		log.Fatalf("Error migrating quick entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.EntryItem{}); err != nil {
		log.Fatalf("Error migrating entry item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.BodyMeasurement{}); err != nil {
		log.Fatalf("Error migrating body measurement database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Subscription{}); err != nil {
		log.Fatalf("Error migrating subscription database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
