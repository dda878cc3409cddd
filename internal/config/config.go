package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/glebarez/sqlite"

	"github.com/mdanilova/boutique/internal/models"
)

type Config struct {
	SERVER_PORT    string
	DATABASE_URL   string
	DB_PATH        string
	SESSION_SECRET string
	KAFKA_ADDRESS  string
	ES_URL         string
	ES_USER        string
	ES_PASSWORD    string
	LOG_LEVEL      string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		SERVER_PORT:    os.Getenv("SERVER_PORT"),
		DATABASE_URL:   os.Getenv("DATABASE_URL"),
		DB_PATH:        os.Getenv("DB_PATH"),
		SESSION_SECRET: os.Getenv("SESSION_SECRET"),
		KAFKA_ADDRESS:  os.Getenv("KAFKA_ADDRESS"),
		ES_URL:         os.Getenv("ES_URL"),
		ES_USER:        os.Getenv("ES_USER"),
		ES_PASSWORD:    os.Getenv("ES_PASSWORD"),
		LOG_LEVEL:      os.Getenv("LOG_LEVEL"),
	}

	if config.SERVER_PORT == "" {
		config.SERVER_PORT = "8080"
	}
	if config.DB_PATH == "" {
		config.DB_PATH = "shop.db"
	}
	if config.SESSION_SECRET == "" {
		return nil, fmt.Errorf("missing required env SESSION_SECRET")
	}

	return config, nil
}

func configurePool(sqlDB *sql.DB) {
	const (
		maxOpenConns    = 20
		maxIdleConns    = 10
		connMaxLifetime = 30 * time.Minute
		connMaxIdleTime = 5 * time.Minute
	)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
}

// InitDB opens the store, migrates the schema and seeds the catalog. Postgres is
// used when DATABASE_URL is set, otherwise a local sqlite file.
func InitDB(ctx context.Context, cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DATABASE_URL != "" {
		dialector = postgres.Open(cfg.DATABASE_URL)
	} else {
		dialector = sqlite.Open(cfg.DB_PATH)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	configurePool(sqlDB)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}); err != nil {
		return nil, fmt.Errorf("db migrate: %w", err)
	}

	if err := SeedProducts(db.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("db seed: %w", err)
	}

	return db, nil
}
