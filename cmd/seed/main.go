package main

import (
	"context"
	"time"

	"github.com/starwars-blog/api/config"
	"github.com/starwars-blog/api/internal/database"
	"github.com/starwars-blog/api/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// PostgreSQL in production is migrated by cmd/migrate
	if db.Dialector.Name() == "sqlite" || !cfg.Environment.IsProduction() {
		if err := db.Migrate(); err != nil {
			logging.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.Seed(ctx, db.DB); err != nil {
		logging.Fatal().Err(err).Msg("failed to seed database")
	}

	logging.Info().
		Int("users", len(database.SeedUsers)).
		Int("planets", len(database.SeedPlanets)).
		Int("starships", len(database.SeedStarships)).
		Int("characters", len(database.SeedCharacters)).
		Msg("database seeded")
}
