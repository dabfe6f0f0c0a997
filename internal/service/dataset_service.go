package service

import (
	"context"
	"fmt"

	"housing-fixtures/internal/generator"
	"housing-fixtures/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DatasetService generates housing datasets on demand
type DatasetService struct {
	maxRecords int
}

// NewDatasetService creates a dataset service that refuses requests producing more than maxRecords records
func NewDatasetService(maxRecords int) *DatasetService {
	return &DatasetService{maxRecords: maxRecords}
}

// Generate builds a dataset for opts
func (s *DatasetService) Generate(ctx context.Context, opts generator.Options) (*models.HousingDataset, error) {
	gen, err := generator.New(opts)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	// New bounds the span and per-year count, so the total cannot overflow.
	if total := opts.TotalRecords(); s.maxRecords > 0 && total > s.maxRecords {
		return nil, fmt.Errorf("service: %w: %d records requested, at most %d allowed", generator.ErrInvalidOptions, total, s.maxRecords)
	}

	dataset, err := gen.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to build dataset: %w", err)
	}

	summary := generator.Summarize(dataset)
	log.Debug().
		Str("run_id", uuid.NewString()).
		Uint64("seed", gen.Seed()).
		Int("prizes", summary.Prizes).
		Int("records", summary.Records).
		Int("anomalies", summary.AnomalyCount()).
		Msg("dataset generated")

	return dataset, nil
}
