package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"miniclip/models/postgres"

	_ "github.com/lib/pq"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// HasDatabaseConfig reports whether the durable store is configured. Both the
// base URL and the service credential are required; with either missing the
// app runs fallback-only for the process lifetime.
func HasDatabaseConfig() bool {
	return os.Getenv("DATABASE_URL") != "" && os.Getenv("DATABASE_SERVICE_KEY") != ""
}

// ConnectGORM returns a GORM DB instance connected to PostgreSQL. The DSN is
// built from DATABASE_URL (host[:port]/database) and DATABASE_SERVICE_KEY
// (the service role credential).
func ConnectGORM() (*gorm.DB, error) {
	baseURL := os.Getenv("DATABASE_URL")
	serviceKey := os.Getenv("DATABASE_SERVICE_KEY")
	user := os.Getenv("DATABASE_USER")
	if user == "" {
		user = "service_role"
	}

	dsn := fmt.Sprintf("postgresql://%s:%s@%s", user, serviceKey, baseURL)

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Printf("Error connecting to PostgreSQL: %v", err)
		return nil, err
	}

	gormConfig := &gorm.Config{}
	if os.Getenv("VERBOSE_POSTGRES") == "true" {
		gormConfig.Logger = logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold: time.Second,
				LogLevel:      logger.Info,
				Colorful:      true,
			},
		)
	}

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), gormConfig)
	if err != nil {
		log.Printf("Error connecting to PostgreSQL with GORM: %v", err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying SQL DB: %v", err)
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Error pinging PostgreSQL: %v", err)
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL with GORM")
	return db, nil
}

// MigrateDatabase migrates the games table to the PostgreSQL database.
func MigrateDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(postgres.Game{}); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	log.Println("PostgreSQL database migrated successfully")
	return nil
}
