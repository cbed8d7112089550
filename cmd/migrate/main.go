package main

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/starwars-blog/api/internal/database"
	"github.com/starwars-blog/api/internal/logging"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	_ = godotenv.Load()
	logging.Init(logging.Config{Level: "info", Format: "console"})

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logging.Fatal().Msg("DATABASE_URL environment variable is not set")
	}
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		logging.Fatal().Msg("SQL migrations target PostgreSQL, sqlite databases are migrated by the API on startup")
	}

	db, err := database.OpenSQL(dsn)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if *rollback {
		name, err := database.RollbackLastMigration(db)
		if err != nil {
			logging.Fatal().Err(err).Msg("rollback failed")
		}
		logging.Info().Str("migration", name).Msg("successfully rolled back migration")
		return
	}

	applied, err := database.RunSQLMigrations(db)
	if err != nil {
		logging.Fatal().Err(err).Strs("applied", applied).Msg("migration failed")
	}
	logging.Info().Int("applied", len(applied)).Msg("all migrations applied successfully")
}
