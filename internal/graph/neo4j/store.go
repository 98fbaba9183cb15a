// Package neo4j implements graph.Store on a Neo4j server.
//
// Node and relationship shapes:
//
//	(:Person {personId})-[:OWNS {acquiredAt}]->(:Item {itemId})
//	(:Person)-[:FRIENDS_WITH]-(:Person)
//	(:Item)-[:TAGGED_WITH]->(:Tag {name})
package neo4j

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/gocypher"

	"github.com/kailas-cloud/bonfire/internal/domain"
	"github.com/kailas-cloud/bonfire/internal/graph"
)

var _ graph.Store = (*Store)(nil)

// Labels and keys of the graph model.
const (
	labelPerson = "Person"
	labelItem   = "Item"
	propPerson  = "personId"
	propItem    = "itemId"
)

// Store implements graph.Store over a Runner.
type Store struct {
	runner Runner
}

// NewStore wraps runner. If runner has a Close(ctx) method, Store.Close calls it.
func NewStore(runner Runner) *Store {
	return &Store{runner: runner}
}

// EnsureSchema creates the uniqueness constraints backing merge semantics.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, q := range []string{
		"CREATE CONSTRAINT person_id IF NOT EXISTS FOR (p:Person) REQUIRE p.personId IS UNIQUE",
		"CREATE CONSTRAINT item_id IF NOT EXISTS FOR (i:Item) REQUIRE i.itemId IS UNIQUE",
		"CREATE CONSTRAINT tag_name IF NOT EXISTS FOR (t:Tag) REQUIRE t.name IS UNIQUE",
	} {
		if _, err := s.run(ctx, "ensure schema", q, nil); err != nil {
			return err
		}
	}
	return nil
}

// Ping runs a trivial query.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.run(ctx, "ping", "RETURN 1", nil)
	return err
}

// Close releases the underlying driver, if any.
func (s *Store) Close(ctx context.Context) error {
	if c, ok := s.runner.(interface{ Close(context.Context) error }); ok {
		return c.Close(ctx)
	}
	return nil
}

func (s *Store) MergePerson(ctx context.Context, personID string) error {
	return s.mergeNode(ctx, labelPerson, propPerson, personID)
}

func (s *Store) MergeItem(ctx context.Context, itemID string, tags []string) error {
	if err := s.mergeNode(ctx, labelItem, propItem, itemID); err != nil {
		return err
	}
	if len(tags) == 0 {
		return nil
	}
	const q = `
MATCH (i:Item {itemId: $itemId})
UNWIND $tags AS name
MERGE (t:Tag {name: name})
MERGE (i)-[:TAGGED_WITH]->(t)`
	_, err := s.run(ctx, "merge item tags", q, map[string]any{"itemId": itemID, "tags": tags})
	return err
}

// SetItemTags links the item to tags and drops every other TAGGED_WITH edge.
// Tag nodes left without items are kept.
func (s *Store) SetItemTags(ctx context.Context, itemID string, tags []string) error {
	if err := s.MergeItem(ctx, itemID, tags); err != nil {
		return err
	}
	if tags == nil {
		// A null list would make the IN test null and keep every edge.
		tags = []string{}
	}
	const q = `
MATCH (:Item {itemId: $itemId})-[r:TAGGED_WITH]->(t:Tag)
WHERE NOT t.name IN $tags
DELETE r`
	_, err := s.run(ctx, "unlink item tags", q, map[string]any{"itemId": itemID, "tags": tags})
	return err
}

func (s *Store) DeletePerson(ctx context.Context, personID string) error {
	return s.deleteNode(ctx, labelPerson, propPerson, personID)
}

func (s *Store) DeleteItem(ctx context.Context, itemID string) error {
	return s.deleteNode(ctx, labelItem, propItem, itemID)
}

func (s *Store) MergeOwnership(ctx context.Context, personID, itemID string, at time.Time) error {
	const q = `
MATCH (p:Person {personId: $personId}), (i:Item {itemId: $itemId})
MERGE (p)-[o:OWNS]->(i)
SET o.acquiredAt = $acquiredAt
RETURN count(o) AS linked`
	res, err := s.run(ctx, "merge ownership", q, map[string]any{
		"personId":   personID,
		"itemId":     itemID,
		"acquiredAt": at.UTC(),
	})
	if err != nil {
		return err
	}
	if firstInt(res, "linked") == 0 {
		return fmt.Errorf("ownership %s -> %s: %w", personID, itemID, domain.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteOwnership(ctx context.Context, personID, itemID string) error {
	const q = `
MATCH (:Person {personId: $personId})-[o:OWNS]->(:Item {itemId: $itemId})
DELETE o`
	_, err := s.run(ctx, "delete ownership", q, map[string]any{"personId": personID, "itemId": itemID})
	return err
}

func (s *Store) MergeFriendship(ctx context.Context, a, b string) error {
	if a == b {
		return domain.InvalidArgument("a person cannot befriend themselves")
	}
	const q = `
MATCH (a:Person {personId: $a}), (b:Person {personId: $b})
MERGE (a)-[f:FRIENDS_WITH]-(b)
RETURN count(f) AS linked`
	res, err := s.run(ctx, "merge friendship", q, map[string]any{"a": a, "b": b})
	if err != nil {
		return err
	}
	if firstInt(res, "linked") == 0 {
		return fmt.Errorf("friendship %s - %s: %w", a, b, domain.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteFriendship(ctx context.Context, a, b string) error {
	const q = `
MATCH (:Person {personId: $a})-[f:FRIENDS_WITH]-(:Person {personId: $b})
DELETE f`
	_, err := s.run(ctx, "delete friendship", q, map[string]any{"a": a, "b": b})
	return err
}

func (s *Store) Friends(ctx context.Context, personID string) ([]string, error) {
	const q = `
MATCH (:Person {personId: $personId})-[:FRIENDS_WITH]-(f:Person)
RETURN DISTINCT f.personId AS id
ORDER BY id`
	res, err := s.run(ctx, "friends", q, map[string]any{"personId": personID})
	if err != nil {
		return nil, err
	}
	return column(res, "id"), nil
}

func (s *Store) OwnedItems(ctx context.Context, personID string) ([]string, error) {
	const q = `
MATCH (:Person {personId: $personId})-[:OWNS]->(i:Item)
RETURN i.itemId AS id
ORDER BY id`
	res, err := s.run(ctx, "owned items", q, map[string]any{"personId": personID})
	if err != nil {
		return nil, err
	}
	return column(res, "id"), nil
}

func (s *Store) Owns(ctx context.Context, personID, itemID string) (bool, error) {
	const q = `
MATCH (:Person {personId: $personId})-[o:OWNS]->(:Item {itemId: $itemId})
RETURN count(o) AS n`
	res, err := s.run(ctx, "owns", q, map[string]any{"personId": personID, "itemId": itemID})
	if err != nil {
		return false, err
	}
	return firstInt(res, "n") > 0, nil
}

func (s *Store) PersonIDs(ctx context.Context) ([]string, error) {
	res, err := s.run(ctx, "person ids", "MATCH (p:Person) RETURN p.personId AS id ORDER BY id", nil)
	if err != nil {
		return nil, err
	}
	return column(res, "id"), nil
}

func (s *Store) ItemIDs(ctx context.Context) ([]string, error) {
	res, err := s.run(ctx, "item ids", "MATCH (i:Item) RETURN i.itemId AS id ORDER BY id", nil)
	if err != nil {
		return nil, err
	}
	return column(res, "id"), nil
}

func (s *Store) mergeNode(ctx context.Context, label, key, id string) error {
	query, params, err := gocypher.NewQueryBuilder().
		Merge(gocypher.N("n", label).WithProperties(map[string]any{key: id})).
		Return("n").
		Build()
	if err != nil {
		return fmt.Errorf("build merge %s: %w", label, err)
	}
	_, err = s.run(ctx, "merge "+label, query, params)
	return err
}

func (s *Store) deleteNode(ctx context.Context, label, key, id string) error {
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("n", label).WithProperties(map[string]any{key: id})).
		DetachDelete("n").
		Build()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", label, err)
	}
	_, err = s.run(ctx, "delete "+label, query, params)
	return err
}

// run executes q and classifies failures: connectivity problems become domain.ErrUnavailable.
func (s *Store) run(ctx context.Context, op, q string, params map[string]any) (*neo4j.EagerResult, error) {
	res, err := s.runner.Run(ctx, q, params)
	if err != nil {
		if isTransient(err) {
			return nil, fmt.Errorf("neo4j %s: %w: %w", op, domain.ErrUnavailable, err)
		}
		return nil, fmt.Errorf("neo4j %s: %w", op, err)
	}
	return res, nil
}

func isTransient(err error) bool {
	return neo4j.IsConnectivityError(err) ||
		neo4j.IsRetryable(err) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}
