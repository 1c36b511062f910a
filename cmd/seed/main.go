package main

import (
	"log"

	"eveshield-be/internal/config"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/pkg/database"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.Options{Quiet: true})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	defer sysLogger.Sync()

	log.Println("Seeding lawyers...")
	SeedLawyers(db)

	log.Println("Seeding therapists...")
	SeedTherapists(db)

	log.Println("Seeding resource articles...")
	SeedArticles(db)

	log.Println("Seeding staff account...")
	SeedStaff(db, sysLogger)

	log.Println("Seed data creation completed!")
}
