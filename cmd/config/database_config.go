package config

import (
	"Agro-Assistant-Backend/internal/utils"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB() (*gorm.DB, error) {
	dbPath := utils.GetConfig("DB_PATH")
	if dbPath == "" {
		dbPath = "agro.db"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Printf("Database connection failed: %v", err)
		return nil, err
	}

	// One shared connection; SQLite's own locking serializes writes.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
