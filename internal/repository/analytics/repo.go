package analytics

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/bonfire/internal/domain"
)

// collection is the consumer view of a typed document repository (ISP).
type collection[T any] interface {
	All(ctx context.Context) ([]T, error)
	GetMany(ctx context.Context, ids []string) ([]T, error)
}

// Repo runs the aggregation pipelines over full collection scans.
type Repo struct {
	items        collection[domain.Item]
	reviews      collection[domain.Review]
	publishers   collection[domain.Publisher]
	transactions collection[domain.Transaction]
}

// New creates an analytics repository.
func New(
	items collection[domain.Item],
	reviews collection[domain.Review],
	publishers collection[domain.Publisher],
	transactions collection[domain.Transaction],
) *Repo {
	return &Repo{items: items, reviews: reviews, publishers: publishers, transactions: transactions}
}

// TopRated ranks items by mean review rating.
func (r *Repo) TopRated(ctx context.Context, limit int) ([]domain.TopRatedItem, error) {
	reviews, err := r.reviews.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan reviews: %w", err)
	}
	rows := rankReviews(reviews, limit)
	if len(rows) == 0 {
		return rows, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ItemID
	}
	items, err := r.items.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	attachItems(rows, items)
	return rows, nil
}

// RevenuePerPublisher sums transaction amounts per publisher of the bought item.
func (r *Repo) RevenuePerPublisher(ctx context.Context) ([]domain.PublisherRevenue, error) {
	txs, err := r.transactions.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan transactions: %w", err)
	}
	if len(txs) == 0 {
		return []domain.PublisherRevenue{}, nil
	}

	items, err := r.items.GetMany(ctx, distinct(txs, func(t domain.Transaction) string { return t.ItemID }))
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	pubIDs := distinct(items, func(it domain.Item) string { return it.PublisherID })
	var publishers []domain.Publisher
	if len(pubIDs) > 0 {
		if publishers, err = r.publishers.GetMany(ctx, pubIDs); err != nil {
			return nil, fmt.Errorf("fetch publishers: %w", err)
		}
	}
	return revenueByPublisher(txs, items, publishers), nil
}

// PlatformStats summarizes item prices per platform.
func (r *Repo) PlatformStats(ctx context.Context) ([]domain.PlatformStat, error) {
	items, err := r.items.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan items: %w", err)
	}
	return platformStats(items), nil
}

// PersonSpending summarizes one person's purchases.
func (r *Repo) PersonSpending(ctx context.Context, personID string) (domain.SpendingSummary, error) {
	txs, err := r.transactions.All(ctx)
	if err != nil {
		return domain.SpendingSummary{}, fmt.Errorf("scan transactions: %w", err)
	}
	return personSpending(personID, txs), nil
}

// distinct returns the non-empty keys of records in first-seen order.
func distinct[T any](records []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, rec := range records {
		k := key(rec)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
