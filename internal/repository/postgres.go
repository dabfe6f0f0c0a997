package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"housing-fixtures/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrPrizeNotFound is returned when no prize matches the requested id.
var ErrPrizeNotFound = errors.New("prize not found")

const schema = `
	CREATE TABLE IF NOT EXISTS prizes (
		id TEXT PRIMARY KEY,
		year INTEGER NOT NULL,
		category TEXT NOT NULL,
		record_count INTEGER NOT NULL,
		data JSONB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS prizes_year_idx ON prizes (year);
`

// Repository stores imported fixture prizes in PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateSchema creates the prizes table if it does not exist
func (r *Repository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// InsertPrizes bulk-loads prizes with COPY. Records are stored verbatim.
func (r *Repository) InsertPrizes(ctx context.Context, prizes []models.PrizeDocument) (int64, error) {
	rows := make([][]any, 0, len(prizes))
	for _, p := range prizes {
		year, err := strconv.Atoi(p.Year)
		if err != nil {
			return 0, fmt.Errorf("repository: prize %s has invalid year %q: %w", p.ID, p.Year, err)
		}
		data, err := encodeRecords(p.Data)
		if err != nil {
			return 0, fmt.Errorf("repository: prize %s: %w", p.ID, err)
		}
		rows = append(rows, []any{p.ID, year, p.Category, len(p.Data), data})
	}

	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"prizes"},
		[]string{"id", "year", "category", "record_count", "data"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy prizes: %w", err)
	}
	return n, nil
}

// CountPrizes returns the number of stored prizes
func (r *Repository) CountPrizes(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM prizes").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count prizes: %w", err)
	}
	return count, nil
}

// FindPrizeByID loads a single prize
func (r *Repository) FindPrizeByID(ctx context.Context, id string) (*models.StoredPrize, error) {
	sql := `
		SELECT id, year, category, record_count, data
		FROM prizes
		WHERE id = $1
	`

	var (
		prize models.StoredPrize
		data  []byte
	)
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&prize.ID,
		&prize.Year,
		&prize.Category,
		&prize.RecordCount,
		&data,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPrizeNotFound
		}
		return nil, fmt.Errorf("repository: failed to query prize: %w", err)
	}
	prize.Data = data

	return &prize, nil
}

// encodeRecords joins raw records into a single JSON array.
func encodeRecords(records []json.RawMessage) ([]byte, error) {
	buf := []byte{'['}
	for i, rec := range records {
		if !json.Valid(rec) {
			return nil, fmt.Errorf("record %d is not valid JSON", i)
		}
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, rec...)
	}
	return append(buf, ']'), nil
}
