package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"housing-fixtures/internal/models"
)

// ErrInvalidPrizeID is returned for ids not shaped like "<year>-<index>".
var ErrInvalidPrizeID = errors.New("invalid prize id")

var prizeIDPattern = regexp.MustCompile(`^\d{4}-[1-9]\d*$`)

// PrizeService looks up imported prizes
type PrizeService struct {
	repo PrizeRepository
}

// PrizeRepository interface for dependency injection
type PrizeRepository interface {
	FindPrizeByID(ctx context.Context, id string) (*models.StoredPrize, error)
}

// NewPrizeService creates a new prize service
func NewPrizeService(repo PrizeRepository) *PrizeService {
	return &PrizeService{repo: repo}
}

// GetPrize returns the stored prize with the given id
func (s *PrizeService) GetPrize(ctx context.Context, id string) (*models.StoredPrize, error) {
	if !prizeIDPattern.MatchString(id) {
		return nil, fmt.Errorf("service: %w: %q", ErrInvalidPrizeID, id)
	}

	prize, err := s.repo.FindPrizeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find prize: %w", err)
	}

	return prize, nil
}
