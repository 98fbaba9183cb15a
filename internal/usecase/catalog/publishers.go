package catalog

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/bonfire/internal/domain"
)

func (s *Service) CreatePublisher(ctx context.Context, p domain.Publisher) (domain.Publisher, error) {
	if err := p.Validate(); err != nil {
		return domain.Publisher{}, err
	}
	if err := s.publishers.Create(ctx, &p); err != nil {
		return domain.Publisher{}, fmt.Errorf("create publisher: %w", err)
	}
	return p, nil
}

func (s *Service) GetPublisher(ctx context.Context, id string) (domain.Publisher, error) {
	return getOne(ctx, s.publishers, "publisher", id)
}

func (s *Service) ListPublishers(ctx context.Context, limit, offset int) (domain.Page[domain.Publisher], error) {
	return page(ctx, s, s.publishers, limit, offset)
}

func (s *Service) UpdatePublisher(ctx context.Context, id string, patch domain.PublisherPatch) (domain.Publisher, error) {
	if err := domain.ValidateID(id); err != nil {
		return domain.Publisher{}, err
	}
	if err := patch.Validate(); err != nil {
		return domain.Publisher{}, err
	}
	p, err := s.publishers.Update(ctx, id, patch)
	if err != nil {
		return domain.Publisher{}, fmt.Errorf("update publisher: %w", err)
	}
	return p, nil
}

func (s *Service) DeletePublisher(ctx context.Context, id string) error {
	return deleteOne(ctx, s.publishers, "publisher", id)
}
