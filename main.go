package main

import (
	"log"
	"os"

	"miniclip/config"
	"miniclip/middleware"
	"miniclip/routes"
	"miniclip/services/catalog"
	"miniclip/services/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	// The durable store is optional: without DATABASE_URL and
	// DATABASE_SERVICE_KEY the app runs on the in-memory fallback alone and
	// submissions are lost on restart.
	var durable store.CatalogStore
	if config.HasDatabaseConfig() {
		gormDB, err := config.ConnectGORM()
		if err != nil {
			log.Fatalf("Error connecting to PostgreSQL: %v", err)
		}
		log.Println("GORM Connected")

		if os.Getenv("MIGRATE_POSTGRES") == "true" {
			log.Println("Migrating PostgreSQL database...")
			if err := config.MigrateDatabase(gormDB); err != nil {
				log.Printf("Warning: Database migration failed: %v", err)
			} else {
				log.Println("Database migrated successfully")
			}
		}

		sqlDB, err := gormDB.DB()
		if err != nil {
			log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
		}
		defer sqlDB.Close()

		durable = store.NewPostgresStore(gormDB)
	} else {
		log.Println("Database not configured, submissions are stored in memory only")
	}

	moderation := catalog.NewModeration(durable, store.NewMemoryStore())

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	middleware.SetUpMiddleware(r)

	routes.SetupRoutes(r, moderation)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
