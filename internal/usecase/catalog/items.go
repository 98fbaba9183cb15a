package catalog

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/bonfire/internal/domain"
)

// CreateItem stores the item and then merges its graph node with tags.
func (s *Service) CreateItem(ctx context.Context, it domain.Item) (domain.Item, domain.Warnings, error) {
	if err := it.Validate(); err != nil {
		return domain.Item{}, nil, err
	}
	if err := s.items.Create(ctx, &it); err != nil {
		return domain.Item{}, nil, fmt.Errorf("create item: %w", err)
	}

	var w domain.Warnings
	if err := s.graph.MergeItem(ctx, it.ID, it.TagNames); err != nil {
		s.graphWarning(ctx, &w, "create_item", err)
	}
	return it, w, nil
}

func (s *Service) GetItem(ctx context.Context, id string) (domain.Item, error) {
	return getOne(ctx, s.items, "item", id)
}

func (s *Service) ListItems(ctx context.Context, limit, offset int) (domain.Page[domain.Item], error) {
	return page(ctx, s, s.items, limit, offset)
}

// UpdateItem applies patch. A tag change replaces the item's tag links in the graph.
func (s *Service) UpdateItem(ctx context.Context, id string, patch domain.ItemPatch) (domain.Item, domain.Warnings, error) {
	if err := domain.ValidateID(id); err != nil {
		return domain.Item{}, nil, err
	}
	if err := patch.Validate(); err != nil {
		return domain.Item{}, nil, err
	}
	it, err := s.items.Update(ctx, id, patch)
	if err != nil {
		return domain.Item{}, nil, fmt.Errorf("update item: %w", err)
	}

	var w domain.Warnings
	if patch.TagNames != nil {
		if err := s.graph.SetItemTags(ctx, id, it.TagNames); err != nil {
			s.graphWarning(ctx, &w, "update_item", err)
		}
	}
	return it, w, nil
}

// DeleteItem removes the document and then the graph node with its edges.
func (s *Service) DeleteItem(ctx context.Context, id string) (domain.Warnings, error) {
	if err := deleteOne(ctx, s.items, "item", id); err != nil {
		return nil, err
	}
	var w domain.Warnings
	if err := s.graph.DeleteItem(ctx, id); err != nil {
		s.graphWarning(ctx, &w, "delete_item", err)
	}
	return w, nil
}
