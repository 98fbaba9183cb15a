package reconcile

import (
	"context"
	"time"

	"github.com/kailas-cloud/bonfire/internal/domain"
)

// Graph is the node-level view of the relationship store.
type Graph interface {
	PersonIDs(ctx context.Context) ([]string, error)
	ItemIDs(ctx context.Context) ([]string, error)
	MergePerson(ctx context.Context, personID string) error
	MergeItem(ctx context.Context, itemID string, tags []string) error
	DeletePerson(ctx context.Context, personID string) error
	DeleteItem(ctx context.Context, itemID string) error
}

// PersonIndex lists person document ids.
type PersonIndex interface {
	IDs(ctx context.Context) ([]string, error)
}

// ItemSource lists item documents; tags are needed to rebuild item nodes.
type ItemSource interface {
	All(ctx context.Context) ([]domain.Item, error)
}

// Report lists what a sweep found and, unless DryRun, repaired.
type Report struct {
	DryRun          bool          `json:"dry_run"`
	DanglingPersons []string      `json:"dangling_persons"`
	DanglingItems   []string      `json:"dangling_items"`
	MissingPersons  []string      `json:"missing_persons"`
	MissingItems    []string      `json:"missing_items"`
	Failures        []string      `json:"failures,omitempty"`
	Took            time.Duration `json:"took"`
}

// Repairs is the number of nodes a sweep would touch.
func (r Report) Repairs() int {
	return len(r.DanglingPersons) + len(r.DanglingItems) + len(r.MissingPersons) + len(r.MissingItems)
}
