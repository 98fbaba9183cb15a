package catalog

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/bonfire/internal/domain"
)

// CreateReview stores a review of an existing item by an existing person.
func (s *Service) CreateReview(ctx context.Context, r domain.Review) (domain.Review, error) {
	if err := r.Validate(); err != nil {
		return domain.Review{}, err
	}
	if err := requireExists(ctx, s.persons, "person", r.PersonID); err != nil {
		return domain.Review{}, err
	}
	if err := requireExists(ctx, s.items, "item", r.ItemID); err != nil {
		return domain.Review{}, err
	}
	if err := s.reviews.Create(ctx, &r); err != nil {
		return domain.Review{}, fmt.Errorf("create review: %w", err)
	}
	return r, nil
}

func (s *Service) GetReview(ctx context.Context, id string) (domain.Review, error) {
	return getOne(ctx, s.reviews, "review", id)
}

func (s *Service) ListReviews(ctx context.Context, limit, offset int) (domain.Page[domain.Review], error) {
	return page(ctx, s, s.reviews, limit, offset)
}

func (s *Service) UpdateReview(ctx context.Context, id string, patch domain.ReviewPatch) (domain.Review, error) {
	if err := domain.ValidateID(id); err != nil {
		return domain.Review{}, err
	}
	if err := patch.Validate(); err != nil {
		return domain.Review{}, err
	}
	r, err := s.reviews.Update(ctx, id, patch)
	if err != nil {
		return domain.Review{}, fmt.Errorf("update review: %w", err)
	}
	return r, nil
}

func (s *Service) DeleteReview(ctx context.Context, id string) error {
	return deleteOne(ctx, s.reviews, "review", id)
}
