package storage

import (
	"log"
	"os"

	"user-feedback-server/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	// TranslateError turns driver-specific unique-constraint failures
	// into gorm.ErrDuplicatedKey, which the stores rely on.
	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if dbError != nil {
		log.Panic("error connection to db: " + dbError.Error())
	}

	DB = db
	return db
}

// Migrate creates or updates the users and feedback tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Feedback{},
	)
}

func InitializeDB() {
	db := connectToDB()
	if err := Migrate(db); err != nil {
		log.Panic("error migrating db: " + err.Error())
	}
}
