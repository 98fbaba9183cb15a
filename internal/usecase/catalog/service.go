package catalog

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/kailas-cloud/bonfire/internal/domain"
	"github.com/kailas-cloud/bonfire/internal/logger"
	"github.com/kailas-cloud/bonfire/internal/metrics"
)

// Repositories groups the per-collection document repositories.
type Repositories struct {
	Items        Repository[domain.Item, domain.ItemPatch]
	Persons      Repository[domain.Person, domain.PersonPatch]
	Reviews      Repository[domain.Review, domain.ReviewPatch]
	Publishers   Repository[domain.Publisher, domain.PublisherPatch]
	Transactions Repository[domain.Transaction, domain.NoPatch]
}

// Service owns the write paths that span both stores.
// The document store is authoritative: it is written first, and a failed
// graph write afterwards is reported as a warning, never rolled back.
type Service struct {
	items        Repository[domain.Item, domain.ItemPatch]
	persons      Repository[domain.Person, domain.PersonPatch]
	reviews      Repository[domain.Review, domain.ReviewPatch]
	publishers   Repository[domain.Publisher, domain.PublisherPatch]
	transactions Repository[domain.Transaction, domain.NoPatch]
	graph        Graph

	// wallets serializes purchases per person.
	wallets stripedLocks

	defaultPageSize int
	maxPageSize     int
}

// New creates a catalog service.
func New(repos Repositories, g Graph) *Service {
	return &Service{
		items:           repos.Items,
		persons:         repos.Persons,
		reviews:         repos.Reviews,
		publishers:      repos.Publishers,
		transactions:    repos.Transactions,
		graph:           g,
		defaultPageSize: 20,
		maxPageSize:     100,
	}
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// graphWarning records a failed graph write that followed a successful document write.
func (s *Service) graphWarning(ctx context.Context, w *domain.Warnings, op string, err error) {
	metrics.GraphSyncWarningsTotal.WithLabelValues(op).Inc()
	logger.FromContext(ctx).Warn("graph sync failed",
		zap.String("operation", op),
		zap.Error(err),
	)
	w.Add(domain.WarningGraphSyncFailed, fmt.Sprintf("%s: %v", op, err))
}

// page validates paging parameters and lists one window of repo.
func page[T any, P any](ctx context.Context, s *Service, repo Repository[T, P], limit, offset int) (domain.Page[T], error) {
	if limit < 0 {
		return domain.Page[T]{}, domain.InvalidArgument("limit must not be negative, got %d", limit)
	}
	if offset < 0 {
		return domain.Page[T]{}, domain.InvalidArgument("offset must not be negative, got %d", offset)
	}
	if limit == 0 {
		limit = s.defaultPageSize
	}
	limit = min(limit, s.maxPageSize)

	recs, total, err := repo.List(ctx, limit, offset)
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("list: %w", err)
	}
	return domain.Page[T]{Items: recs, Total: total, Limit: limit, Offset: offset}, nil
}

// getOne fetches a record and annotates errors with the collection name.
func getOne[T any, P any](ctx context.Context, repo Repository[T, P], kind, id string) (T, error) {
	rec, err := repo.Get(ctx, id)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("get %s: %w", kind, err)
	}
	return rec, nil
}

// deleteOne removes a record, reporting domain.ErrNotFound when nothing was stored.
func deleteOne[T any, P any](ctx context.Context, repo Repository[T, P], kind, id string) error {
	removed, err := repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	if !removed {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}

func requireExists[T any, P any](ctx context.Context, repo Repository[T, P], kind, id string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	ok, err := repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check %s: %w", kind, err)
	}
	if !ok {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
