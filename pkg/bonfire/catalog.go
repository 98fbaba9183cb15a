package bonfire

import (
	"context"

	analyticsuc "github.com/kailas-cloud/bonfire/internal/usecase/analytics"
	cataloguc "github.com/kailas-cloud/bonfire/internal/usecase/catalog"
)

// ReviewService manages reviews. Reviews live only in the document store.
type ReviewService struct {
	catalog *cataloguc.Service
	obs     *observer
}

// Create stores a review. The person and the item must exist.
func (s *ReviewService) Create(ctx context.Context, r Review) (Review, error) {
	return observed(ctx, s.obs, "review.create", func(ctx context.Context) (Review, error) {
		return s.catalog.CreateReview(ctx, r)
	})
}

func (s *ReviewService) Get(ctx context.Context, id string) (Review, error) {
	return observed(ctx, s.obs, "review.get", func(ctx context.Context) (Review, error) {
		return s.catalog.GetReview(ctx, id)
	})
}

func (s *ReviewService) List(ctx context.Context, limit, offset int) (Page[Review], error) {
	return observed(ctx, s.obs, "review.list", func(ctx context.Context) (Page[Review], error) {
		return s.catalog.ListReviews(ctx, limit, offset)
	})
}

func (s *ReviewService) Update(ctx context.Context, id string, patch ReviewPatch) (Review, error) {
	return observed(ctx, s.obs, "review.update", func(ctx context.Context) (Review, error) {
		return s.catalog.UpdateReview(ctx, id, patch)
	})
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return observedErr(ctx, s.obs, "review.delete", func(ctx context.Context) error {
		return s.catalog.DeleteReview(ctx, id)
	})
}

// PublisherService manages publishers.
type PublisherService struct {
	catalog   *cataloguc.Service
	analytics *analyticsuc.Service
	obs       *observer
}

func (s *PublisherService) Create(ctx context.Context, p Publisher) (Publisher, error) {
	return observed(ctx, s.obs, "publisher.create", func(ctx context.Context) (Publisher, error) {
		return s.catalog.CreatePublisher(ctx, p)
	})
}

func (s *PublisherService) Get(ctx context.Context, id string) (Publisher, error) {
	return observed(ctx, s.obs, "publisher.get", func(ctx context.Context) (Publisher, error) {
		return s.catalog.GetPublisher(ctx, id)
	})
}

func (s *PublisherService) List(ctx context.Context, limit, offset int) (Page[Publisher], error) {
	return observed(ctx, s.obs, "publisher.list", func(ctx context.Context) (Page[Publisher], error) {
		return s.catalog.ListPublishers(ctx, limit, offset)
	})
}

func (s *PublisherService) Update(ctx context.Context, id string, patch PublisherPatch) (Publisher, error) {
	return observed(ctx, s.obs, "publisher.update", func(ctx context.Context) (Publisher, error) {
		return s.catalog.UpdatePublisher(ctx, id, patch)
	})
}

func (s *PublisherService) Delete(ctx context.Context, id string) error {
	return observedErr(ctx, s.obs, "publisher.delete", func(ctx context.Context) error {
		return s.catalog.DeletePublisher(ctx, id)
	})
}

// Revenue sums transaction amounts per publisher, highest first.
func (s *PublisherService) Revenue(ctx context.Context) ([]PublisherRevenue, error) {
	return observed(ctx, s.obs, "publisher.revenue", func(ctx context.Context) ([]PublisherRevenue, error) {
		return s.analytics.RevenuePerPublisher(ctx)
	})
}

// PurchaseService runs purchases and reads the transaction log.
type PurchaseService struct {
	catalog *cataloguc.Service
	obs     *observer
}

// Buy charges the person and records ownership.
// Fails with ErrAlreadyOwned or ErrInsufficientFunds before anything is written.
func (s *PurchaseService) Buy(ctx context.Context, req PurchaseRequest) (Receipt, error) {
	return observed(ctx, s.obs, "purchase.buy", func(ctx context.Context) (Receipt, error) {
		return s.catalog.Purchase(ctx, req)
	})
}

// Revoke removes an ownership edge. The transaction and balance are untouched.
func (s *PurchaseService) Revoke(ctx context.Context, personID, itemID string) error {
	return observedErr(ctx, s.obs, "purchase.revoke", func(ctx context.Context) error {
		return s.catalog.RevokeOwnership(ctx, personID, itemID)
	})
}

func (s *PurchaseService) Transaction(ctx context.Context, id string) (Transaction, error) {
	return observed(ctx, s.obs, "transaction.get", func(ctx context.Context) (Transaction, error) {
		return s.catalog.GetTransaction(ctx, id)
	})
}

func (s *PurchaseService) Transactions(ctx context.Context, limit, offset int) (Page[Transaction], error) {
	return observed(ctx, s.obs, "transaction.list", func(ctx context.Context) (Page[Transaction], error) {
		return s.catalog.ListTransactions(ctx, limit, offset)
	})
}
