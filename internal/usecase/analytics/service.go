package analytics

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/bonfire/internal/domain"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Service validates analytics parameters and delegates to the aggregator.
type Service struct {
	agg     Aggregator
	persons PersonChecker
}

// New creates an analytics service.
// persons may be nil, in which case spending summaries are not checked for a known person.
func New(agg Aggregator, persons PersonChecker) *Service {
	return &Service{agg: agg, persons: persons}
}

// TopRated returns the best reviewed items. limit 0 means the default.
func (s *Service) TopRated(ctx context.Context, limit int) ([]domain.TopRatedItem, error) {
	if limit < 0 {
		return nil, domain.InvalidArgument("limit must not be negative, got %d", limit)
	}
	if limit == 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	rows, err := s.agg.TopRated(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top rated: %w", err)
	}
	return rows, nil
}

func (s *Service) RevenuePerPublisher(ctx context.Context) ([]domain.PublisherRevenue, error) {
	rows, err := s.agg.RevenuePerPublisher(ctx)
	if err != nil {
		return nil, fmt.Errorf("revenue per publisher: %w", err)
	}
	return rows, nil
}

func (s *Service) PlatformStats(ctx context.Context) ([]domain.PlatformStat, error) {
	rows, err := s.agg.PlatformStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("platform stats: %w", err)
	}
	return rows, nil
}

// PersonSpending summarizes one person's purchases.
func (s *Service) PersonSpending(ctx context.Context, personID string) (domain.SpendingSummary, error) {
	if err := domain.ValidateID(personID); err != nil {
		return domain.SpendingSummary{}, err
	}
	if s.persons != nil {
		ok, err := s.persons.Exists(ctx, personID)
		if err != nil {
			return domain.SpendingSummary{}, fmt.Errorf("check person: %w", err)
		}
		if !ok {
			return domain.SpendingSummary{}, fmt.Errorf("person %s: %w", personID, domain.ErrNotFound)
		}
	}

	sum, err := s.agg.PersonSpending(ctx, personID)
	if err != nil {
		return domain.SpendingSummary{}, fmt.Errorf("person spending: %w", err)
	}
	return sum, nil
}
