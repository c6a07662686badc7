package main

import (
	"log"
	"os"

	"github.com/simmi-91/freezer-storage-app/cmd/config"
	migration "github.com/simmi-91/freezer-storage-app/cmd/database/migrate"
	"github.com/simmi-91/freezer-storage-app/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env overlay for secrets; config.yaml holds the rest.
	_ = godotenv.Load()
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Printf("database unreachable, using in-memory store: %v", err)
		db = nil
	} else if err := migration.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
