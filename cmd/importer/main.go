package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"housing-fixtures/internal/config"
	"housing-fixtures/internal/fixture"
	"housing-fixtures/internal/logger"
	"housing-fixtures/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the JSON fixture to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(cfg.LogLevel)

	log.Info().Str("file", *file).Msg("starting import")

	doc, err := fixture.Read(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse fixture")
	}
	log.Info().Int("prizes", len(doc.Prizes)).Msg("parsed fixture")

	ctx := context.Background()

	// Connect to DB
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)

	// Ensure table exists
	if err := repo.CreateSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	// Insert prizes
	inserted, err := repo.InsertPrizes(ctx, doc.Prizes)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot insert prizes")
	}

	// Verify data
	count, err := repo.CountPrizes(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot verify import")
	}
	if count < int(inserted) {
		log.Fatal().Int("expected", int(inserted)).Int("got", count).Msg("prize count mismatch")
	}

	fmt.Printf("Successfully imported %d prizes\n", inserted)
}
