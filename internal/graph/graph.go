// Package graph defines the relationship store: persons, items and tags as
// nodes, ownership, friendship and tagging as edges, plus the read-only
// traversals the join engine builds on.
package graph

import (
	"context"
	"time"
)

// FriendRecommendation is an item owned by friends of a person but not by the person.
type FriendRecommendation struct {
	ItemID      string
	FriendCount int
	FriendIDs   []string
}

// CoOwnership is an item owned together with a target item.
type CoOwnership struct {
	ItemID     string
	OwnerCount int
	OwnerIDs   []string
}

// TagPopularity counts how a tag is represented among a person's friends' items.
type TagPopularity struct {
	Tag         string
	ItemCount   int
	FriendCount int
	FriendIDs   []string
}

// Buddy is a non-friend sharing owned items with a person.
type Buddy struct {
	PersonID      string
	SharedCount   int
	SharedItemIDs []string
}

// TagSimilarity is an item sharing tags with a target item.
type TagSimilarity struct {
	ItemID      string
	SharedCount int
	SharedTags  []string
}

// Writer mutates nodes and edges. Every operation is idempotent.
type Writer interface {
	MergePerson(ctx context.Context, personID string) error
	// MergeItem ensures the item node and links it to every tag in tags.
	// Existing tag links are kept.
	MergeItem(ctx context.Context, itemID string, tags []string) error
	// SetItemTags ensures the item node and makes its tag links exactly tags.
	SetItemTags(ctx context.Context, itemID string, tags []string) error
	DeletePerson(ctx context.Context, personID string) error
	DeleteItem(ctx context.Context, itemID string) error
	// MergeOwnership creates or refreshes the single OWNS edge.
	// Returns domain.ErrNotFound when either node is absent.
	MergeOwnership(ctx context.Context, personID, itemID string, at time.Time) error
	DeleteOwnership(ctx context.Context, personID, itemID string) error
	// MergeFriendship links two distinct persons; direction is irrelevant.
	MergeFriendship(ctx context.Context, a, b string) error
	DeleteFriendship(ctx context.Context, a, b string) error
}

// Reader answers neighbourhood and enumeration queries.
type Reader interface {
	Friends(ctx context.Context, personID string) ([]string, error)
	OwnedItems(ctx context.Context, personID string) ([]string, error)
	Owns(ctx context.Context, personID, itemID string) (bool, error)
	PersonIDs(ctx context.Context) ([]string, error)
	ItemIDs(ctx context.Context) ([]string, error)
}

// Traverser runs the ranked analyses. Rankings break ties by identifier ascending
// and every collected id list is sorted ascending.
type Traverser interface {
	RecommendByFriends(ctx context.Context, personID string, limit int) ([]FriendRecommendation, error)
	AlsoOwned(ctx context.Context, itemID string, limit int) ([]CoOwnership, error)
	// PopularTags returns the full ranking; callers truncate.
	PopularTags(ctx context.Context, personID string) ([]TagPopularity, error)
	GamingBuddies(ctx context.Context, personID string, limit int) ([]Buddy, error)
	SimilarByTags(ctx context.Context, itemID string, limit int) ([]TagSimilarity, error)
}

// Store is the full graph facade.
type Store interface {
	Writer
	Reader
	Traverser
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
