package migration

import (
	"fmt"
	"log"

	"github.com/simmi-91/freezer-storage-app/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.FreezerItem{}); err != nil {
		log.Fatalf("Error migrating freezer item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PhotoScan{}); err != nil {
		log.Fatalf("Error migrating photo scan database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
