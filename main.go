package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ministore/ministore-api/catalog"
	"github.com/ministore/ministore-api/models"
	"github.com/ministore/ministore-api/routes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Catalog provider: remote proxy when CATALOG_BASE_URL is set, otherwise
	// the built-in static catalog.
	var provider catalog.Provider = catalog.NewMemoryProvider()
	if baseURL := os.Getenv("CATALOG_BASE_URL"); baseURL != "" {
		log.Printf("Using remote catalog at %s", baseURL)
		provider = catalog.NewRemoteProvider(baseURL)
	}

	// Setup routes
	routes.SetupRoutes(r, db, provider)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection. DATABASE_URL (or the DB_*
// variables) selects Postgres; without either, an embedded SQLite file is
// used for local development.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host,
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Fatalf("❌ Failed to connect DB: %v", err)
		}
		return db
	}

	log.Println("DATABASE_URL not set, falling back to local sqlite data.db")
	db, err := gorm.Open(sqlite.Open("data.db"), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("❌ Failed to open sqlite database: %v", err)
	}
	return db
}
