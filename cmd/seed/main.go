package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"trivia/cmd/seed/internal/seeder"
	"trivia/cmd/seed/internal/seedmodels"
	"trivia/internal/config"
	"trivia/internal/database"
	"trivia/internal/logger"
	"trivia/internal/repository"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/questions.json"

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path of the JSON seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting question seeding", zap.String("path", *seedFilePath))
	byteValue, err := os.ReadFile(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}

	var seedCategories []seedmodels.SeedCategory
	if err := json.Unmarshal(byteValue, &seedCategories); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}

	db, err := database.NewSQLXDB(ctx, cfg.DB, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	s := seeder.New(
		repository.NewQuestionDatabaseAdapter(db),
		repository.NewCategoryDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db),
		log,
	)
	res, err := s.Seed(ctx, seedCategories)
	if err != nil {
		log.Error("Seeding stopped", zap.Error(err))
		return
	}
	log.Info("Seeding completed",
		zap.Int("inserted", res.Inserted),
		zap.Int("skipped_duplicates", res.SkippedDuplicates),
		zap.Int("skipped_categories", res.SkippedCategories))
}
