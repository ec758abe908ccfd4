package config

import (
	"log"
	"os"

	"pizzeria-pos/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "pizzeria_pos_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "pizzeria.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Combo{},
		&models.PizzaFlavor{},
		&models.Order{},
		&models.OrderItem{},
		&models.CashLog{},
		&models.Notification{},
		&models.DeliveryPerson{},
		&models.DeliveryArea{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// SetTestDB swaps the global handle — used by handler tests with an
// in-memory sqlite database
func SetTestDB(db *gorm.DB) {
	DB = db
}
