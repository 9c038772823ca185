package migration

import (
	"Agro-Assistant-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Printf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Plant{}); err != nil {
		log.Printf("Error migrating plant database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Trend{}); err != nil {
		log.Printf("Error migrating trend database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Task{}); err != nil {
		log.Printf("Error migrating task database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Message{}); err != nil {
		log.Printf("Error migrating message database: %v", err)
		return err
	}

	if err := seedDefaultUser(db); err != nil {
		log.Printf("Error seeding default user: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// seedDefaultUser inserts the stock account exactly once, on a fresh database.
func seedDefaultUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Create(&entities.User{
		Username:     "user",
		Password:     "password",
		Email:        "user@example.com",
		Organization: "Home Garden",
	}).Error
}
