package main

import (
	"errors"
	"os"
	"strconv"

	"coin-purchase/internal/config"
	"coin-purchase/internal/database"
	"coin-purchase/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

const usage = "usage: migrate <up|down|version|force N>"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(config.LogConfig{Pretty: true, Level: "info"})
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}
	log := logger.New(cfg.Log)

	source := os.Getenv("MIGRATIONS_SOURCE")
	if source == "" {
		source = "file://migrations"
	}

	m, err := migrate.New(source, database.DSN(cfg.Database))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create migrate instance")
	}
	defer m.Close()

	if len(os.Args) < 2 {
		log.Fatal().Msg(usage)
	}

	switch os.Args[1] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
		log.Info().Msg("Migrations applied")

	case "down":
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("Failed to roll back migration")
		}
		log.Info().Msg("Migration rolled back")

	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal().Err(err).Msg("Failed to get version")
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Schema version")

	case "force":
		if len(os.Args) < 3 {
			log.Fatal().Msg(usage)
		}
		version, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatal().Err(err).Str("version", os.Args[2]).Msg("Invalid version")
		}
		if err := m.Force(version); err != nil {
			log.Fatal().Err(err).Msg("Failed to force version")
		}
		log.Info().Int("version", version).Msg("Forced schema version")

	default:
		log.Fatal().Str("command", os.Args[1]).Msg(usage)
	}
}
