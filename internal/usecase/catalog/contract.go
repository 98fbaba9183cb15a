package catalog

import (
	"context"

	"github.com/kailas-cloud/bonfire/internal/graph"
)

// Repository is the document-store contract for one collection.
type Repository[T any, P any] interface {
	Create(ctx context.Context, rec *T) error
	Get(ctx context.Context, id string) (T, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]T, int, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Graph is the relationship side of the write paths.
type Graph interface {
	graph.Writer
	Owns(ctx context.Context, personID, itemID string) (bool, error)
}
