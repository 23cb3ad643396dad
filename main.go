package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/quocthai179/my-succulent-store/chat"
	"github.com/quocthai179/my-succulent-store/crud"
	"github.com/quocthai179/my-succulent-store/models"
	"github.com/quocthai179/my-succulent-store/routes"
)

func main() {
	log.Println("Starting succulent store API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// Seed the catalog (no-op on an already seeded database)
	if err := crud.SeedProducts(db); err != nil {
		log.Fatalf("Seeding products failed: %v", err)
	}

	// Pick the chat strategy once for the whole process
	interp := chat.NewInterpreter(db)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, interp)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDatabase connects to DATABASE_URL (postgres), or falls back to a
// local sqlite file for development.
func initDatabase() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("DATABASE_URL not set, using local sqlite dev.db")
		db, err := gorm.Open(sqlite.Open("dev.db"), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to open sqlite database: %v", err)
		}
		return db
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}
