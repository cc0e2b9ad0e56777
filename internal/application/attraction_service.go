package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/travel-planner/internal/persistence"
)

// maxAttractionLimit caps a single catalog page.
const maxAttractionLimit = 500

// AttractionService serves the swipe catalog.
type AttractionService struct {
	attractions persistence.AttractionRepository
	logger      *slog.Logger
}

// NewAttractionService wires dependencies for catalog queries.
func NewAttractionService(attractions persistence.AttractionRepository) *AttractionService {
	return NewAttractionServiceWithLogger(attractions, nil)
}

// NewAttractionServiceWithLogger constructs an AttractionService with a specified logger.
func NewAttractionServiceWithLogger(attractions persistence.AttractionRepository, logger *slog.Logger) *AttractionService {
	return &AttractionService{
		attractions: attractions,
		logger:      defaultLogger(logger),
	}
}

func (s *AttractionService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "AttractionService", operation, attrs...)
}

// ListAttractions returns catalog entries ordered by rating, best first.
// An empty destination or category leaves that dimension unfiltered.
func (s *AttractionService) ListAttractions(ctx context.Context, params ListAttractionsParams) ([]persistence.Attraction, error) {
	if s == nil || s.attractions == nil {
		return nil, fmt.Errorf("attraction repository not configured")
	}

	vErr := &ValidationError{}
	if params.Limit < 0 {
		vErr.add("limit", "limit must not be negative")
	} else if params.Limit > maxAttractionLimit {
		vErr.add("limit", fmt.Sprintf("limit must not exceed %d", maxAttractionLimit))
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	filter := persistence.AttractionFilter{
		Destination: strings.TrimSpace(params.Destination),
		Category:    strings.TrimSpace(params.Category),
		Limit:       params.Limit,
	}

	attractions, err := s.attractions.ListAttractions(ctx, filter)
	if err != nil {
		logger := s.loggerWith(ctx, "ListAttractions", "destination", filter.Destination)
		logger.ErrorContext(ctx, "failed to list attractions", "error", err, "error_kind", ErrorKind(err))
		return nil, mapRepoError(err)
	}
	return attractions, nil
}

// GetAttraction returns one catalog entry.
func (s *AttractionService) GetAttraction(ctx context.Context, attractionID string) (persistence.Attraction, error) {
	if s == nil || s.attractions == nil {
		return persistence.Attraction{}, fmt.Errorf("attraction repository not configured")
	}

	attraction, err := s.attractions.GetAttraction(ctx, attractionID)
	if err != nil {
		return persistence.Attraction{}, mapRepoError(err)
	}
	return attraction, nil
}
