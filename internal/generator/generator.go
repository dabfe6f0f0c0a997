package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"housing-fixtures/internal/models"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidOptions is returned when generation options fail validation.
var ErrInvalidOptions = errors.New("invalid generation options")

// Limits on the shape of a dataset. Years are four digits so prize ids stay "<yyyy>-<index>".
const (
	MinYear           = 1000
	MaxYear           = 9999
	MaxYearSpan       = 100
	MaxRecordsPerYear = 1000000
)

// Options control the shape of a generated dataset.
type Options struct {
	YearFrom       int     `validate:"gte=1000,lte=9999"`
	YearTo         int     `validate:"gtefield=YearFrom,lte=9999"`
	Category       string  `validate:"required"`
	RecordsPerYear int     `validate:"gte=0,lte=1000000"`
	AnomalyRate    float64 `validate:"gte=0,lte=1"`
	// Seed selects the random stream. Zero picks a seed from the clock.
	Seed uint64
}

// DefaultOptions reproduces the historical fixture: 500 prizes for each year 2014..2024.
func DefaultOptions() Options {
	return Options{
		YearFrom:       2014,
		YearTo:         2024,
		Category:       "housing",
		RecordsPerYear: 500,
	}
}

var validate = validator.New()

// Years returns the number of years in the range.
func (o Options) Years() int {
	return o.YearTo - o.YearFrom + 1
}

// TotalRecords returns the number of records a build produces. Year y
// contributes RecordsPerYear prizes of y-YearFrom+1 records each. Only
// meaningful for options accepted by New.
func (o Options) TotalRecords() int {
	years := o.Years()
	return o.RecordsPerYear * years * (years + 1) / 2
}

// Generator builds housing datasets from a seeded random stream.
type Generator struct {
	opts     Options
	seed     uint64
	sampler  *Sampler
	injector *Injector
}

// New validates opts and creates a generator
func New(opts Options) (*Generator, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("generator: %w: %v", ErrInvalidOptions, err)
	}
	if span := opts.Years(); span > MaxYearSpan {
		return nil, fmt.Errorf("generator: %w: %d years exceeds the limit of %d", ErrInvalidOptions, span, MaxYearSpan)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	return &Generator{
		opts:     opts,
		seed:     seed,
		sampler:  NewSampler(rng),
		injector: NewInjector(rng, opts.AnomalyRate),
	}, nil
}

// Seed returns the seed in use, so a run can be reproduced.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// EntriesPerPrize returns the record count of every prize in year.
func (g *Generator) EntriesPerPrize(year int) int {
	return year - g.opts.YearFrom + 1
}

// Build generates the dataset. Prizes are ordered by year, then by index.
func (g *Generator) Build(ctx context.Context) (*models.HousingDataset, error) {
	years := g.opts.Years()
	dataset := &models.HousingDataset{
		Prizes: make([]models.Prize, 0, years*g.opts.RecordsPerYear),
	}

	for year := g.opts.YearFrom; year <= g.opts.YearTo; year++ {
		entries := g.EntriesPerPrize(year)
		yearStr := strconv.Itoa(year)

		for i := 1; i <= g.opts.RecordsPerYear; i++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("generator: build interrupted: %w", err)
			}

			dataset.Prizes = append(dataset.Prizes, models.Prize{
				Year:     yearStr,
				Category: g.opts.Category,
				ID:       fmt.Sprintf("%d-%d", year, i),
				Data:     g.records(entries),
			})
		}
	}

	return dataset, nil
}

func (g *Generator) records(n int) []models.Record {
	out := make([]models.Record, 0, n)
	for range n {
		out = append(out, g.injector.Apply(g.sampler.Record()))
	}
	return out
}
