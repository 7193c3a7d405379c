package main

import (
	"fmt"
	"os"

	"finabiz/internal/database"
	"finabiz/internal/logger"
	"finabiz/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	seedService := services.NewSeedService(dbManager.DB())

	categories, err := seedService.EnsureCategories()
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	for _, result := range categories {
		if result.Created {
			log.Infof("Created category: %s", result.Name)
		} else {
			log.Infof("Category already present: %s", result.Name)
		}
	}

	achievements, err := seedService.EnsureAchievementTypes()
	if err != nil {
		return fmt.Errorf("failed to seed achievement types: %w", err)
	}
	for _, result := range achievements {
		if result.Created {
			log.Infof("Created achievement type: %s", result.Name)
		} else {
			log.Infof("Achievement type already present: %s", result.Name)
		}
	}

	return nil
}
