package main

import (
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/kalakritam/kalakritam-api/internal/dbproxy"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := dbproxy.LoadConfig()
	if cfg.Token == "" {
		log.Fatal("DB_PROXY_TOKEN must be set")
	}

	var db *sqlx.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = sqlx.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Invalid DATABASE_URL: %v", err)
		}
	} else {
		log.Println("DATABASE_URL not set, queries will fail until configured")
	}

	port := os.Getenv("DB_PROXY_PORT")
	if port == "" {
		port = "8787"
	}

	srv := dbproxy.NewServer(cfg, db)
	if err := srv.Router().Run(":" + port); err != nil {
		log.Fatalf("Proxy failed to start: %v", err)
	}
}
