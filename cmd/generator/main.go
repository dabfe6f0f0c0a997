package main

import (
	"context"
	"flag"
	"fmt"

	"housing-fixtures/internal/config"
	"housing-fixtures/internal/fixture"
	"housing-fixtures/internal/generator"
	"housing-fixtures/internal/logger"
	"housing-fixtures/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(cfg.LogLevel)

	opts := cfg.GeneratorOptions()
	from := flag.Int("from", opts.YearFrom, "First year of the range (inclusive)")
	to := flag.Int("to", opts.YearTo, "Last year of the range (inclusive)")
	category := flag.String("category", opts.Category, "Category label of every prize")
	perYear := flag.Int("per-year", opts.RecordsPerYear, "Number of prizes generated for each year")
	rate := flag.Float64("anomaly-rate", opts.AnomalyRate, "Probability that a record is corrupted (0 disables)")
	seed := flag.Uint64("seed", opts.Seed, "Random seed (0 picks one from the clock)")
	out := flag.String("out", cfg.OutputPath, "Output path (defaults to the variant's file name)")
	flag.Parse()

	opts = generator.Options{
		YearFrom:       *from,
		YearTo:         *to,
		Category:       *category,
		RecordsPerYear: *perYear,
		AnomalyRate:    *rate,
		Seed:           *seed,
	}
	path := *out
	if path == "" {
		path = config.DefaultOutputPath(opts.AnomalyRate)
	}

	runID := uuid.NewString()
	logCtx := log.With().Str("run_id", runID).Logger()

	gen, err := generator.New(opts)
	if err != nil {
		logCtx.Fatal().Err(err).Msg("cannot create generator")
	}
	logCtx.Info().
		Uint64("seed", gen.Seed()).
		Int("from", opts.YearFrom).
		Int("to", opts.YearTo).
		Int("per_year", opts.RecordsPerYear).
		Float64("anomaly_rate", opts.AnomalyRate).
		Msg("generating dataset")

	dataset, err := gen.Build(context.Background())
	if err != nil {
		logCtx.Fatal().Err(err).Msg("cannot build dataset")
	}

	summary := generator.Summarize(dataset)
	logCtx.Info().
		Int("prizes", summary.Prizes).
		Int("records", summary.Records).
		Int("missing", summary.Anomalies[models.KindMissing]).
		Int("invalid", summary.Anomalies[models.KindInvalid]).
		Int("out_of_range", summary.Anomalies[models.KindOutOfRange]).
		Msg("dataset built")

	if err := fixture.Write(path, dataset); err != nil {
		logCtx.Fatal().Err(err).Str("path", path).Msg("cannot write dataset")
	}

	fmt.Printf("Large housing data has been saved to %s\n", path)
}
