package join

import (
	"context"

	"github.com/kailas-cloud/bonfire/internal/domain"
	"github.com/kailas-cloud/bonfire/internal/graph"
)

// Graph is the traversal side of a join.
type Graph interface {
	graph.Traverser
	Friends(ctx context.Context, personID string) ([]string, error)
	OwnedItems(ctx context.Context, personID string) ([]string, error)
}

// ItemReader resolves item identifiers in one round trip; missing ids are omitted.
type ItemReader interface {
	GetMany(ctx context.Context, ids []string) ([]domain.Item, error)
}

// PersonReader resolves person identifiers in one round trip; missing ids are omitted.
type PersonReader interface {
	GetMany(ctx context.Context, ids []string) ([]domain.Person, error)
}
