package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"witt-interpreter-be/pkg/database"
	"witt-interpreter-be/pkg/vectorstore/pgvector"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Extensions GORM AutoMigrate doesn't handle
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS vector;`).Error; err != nil {
		log.Printf("Warn: Failed to create vector extension: %v. Continuing...", err)
	}

	// 4. AutoMigrate
	if err := db.AutoMigrate(&pgvector.PassageEmbedding{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
