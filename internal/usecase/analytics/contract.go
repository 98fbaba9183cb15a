package analytics

import (
	"context"

	"github.com/kailas-cloud/bonfire/internal/domain"
)

// Aggregator runs the analytics pipelines over the document store.
type Aggregator interface {
	TopRated(ctx context.Context, limit int) ([]domain.TopRatedItem, error)
	RevenuePerPublisher(ctx context.Context) ([]domain.PublisherRevenue, error)
	PlatformStats(ctx context.Context) ([]domain.PlatformStat, error)
	PersonSpending(ctx context.Context, personID string) (domain.SpendingSummary, error)
}

// PersonChecker reports whether a person document exists.
type PersonChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
