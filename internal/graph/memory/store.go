// Package memory is an in-process graph.Store backed by adjacency maps.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/kailas-cloud/bonfire/internal/domain"
	"github.com/kailas-cloud/bonfire/internal/graph"
)

var _ graph.Store = (*Store)(nil)

type set map[string]struct{}

func (s set) sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Store keeps the whole graph in memory.
type Store struct {
	mu sync.RWMutex

	persons set
	items   map[string]set // item -> tags
	tags    set
	owns    map[string]map[string]time.Time // person -> item -> acquiredAt
	ownedBy map[string]set                  // item -> persons
	friends map[string]set
}

// NewStore returns an empty graph.
func NewStore() *Store {
	return &Store{
		persons: make(set),
		items:   make(map[string]set),
		tags:    make(set),
		owns:    make(map[string]map[string]time.Time),
		ownedBy: make(map[string]set),
		friends: make(map[string]set),
	}
}

func (s *Store) Ping(context.Context) error  { return nil }
func (s *Store) Close(context.Context) error { return nil }

func (s *Store) MergePerson(_ context.Context, personID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persons[personID] = struct{}{}
	return nil
}

func (s *Store) MergeItem(_ context.Context, itemID string, tags []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	linked, ok := s.items[itemID]
	if !ok {
		linked = make(set)
		s.items[itemID] = linked
	}
	for _, t := range tags {
		s.tags[t] = struct{}{}
		linked[t] = struct{}{}
	}
	return nil
}

func (s *Store) SetItemTags(_ context.Context, itemID string, tags []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	linked := make(set, len(tags))
	for _, t := range tags {
		s.tags[t] = struct{}{}
		linked[t] = struct{}{}
	}
	s.items[itemID] = linked
	return nil
}

func (s *Store) DeletePerson(_ context.Context, personID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.persons, personID)
	for item := range s.owns[personID] {
		delete(s.ownedBy[item], personID)
	}
	delete(s.owns, personID)
	for f := range s.friends[personID] {
		delete(s.friends[f], personID)
	}
	delete(s.friends, personID)
	return nil
}

func (s *Store) DeleteItem(_ context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, itemID)
	for p := range s.ownedBy[itemID] {
		delete(s.owns[p], itemID)
	}
	delete(s.ownedBy, itemID)
	return nil
}

func (s *Store) MergeOwnership(_ context.Context, personID, itemID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons[personID]; !ok {
		return fmt.Errorf("person %s: %w", personID, domain.ErrNotFound)
	}
	if _, ok := s.items[itemID]; !ok {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}
	if s.owns[personID] == nil {
		s.owns[personID] = make(map[string]time.Time)
	}
	s.owns[personID][itemID] = at
	if s.ownedBy[itemID] == nil {
		s.ownedBy[itemID] = make(set)
	}
	s.ownedBy[itemID][personID] = struct{}{}
	return nil
}

func (s *Store) DeleteOwnership(_ context.Context, personID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.owns[personID], itemID)
	delete(s.ownedBy[itemID], personID)
	return nil
}

func (s *Store) MergeFriendship(_ context.Context, a, b string) error {
	if a == b {
		return domain.InvalidArgument("a person cannot befriend themselves")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range []string{a, b} {
		if _, ok := s.persons[p]; !ok {
			return fmt.Errorf("person %s: %w", p, domain.ErrNotFound)
		}
	}
	s.link(a, b)
	s.link(b, a)
	return nil
}

func (s *Store) link(from, to string) {
	if s.friends[from] == nil {
		s.friends[from] = make(set)
	}
	s.friends[from][to] = struct{}{}
}

func (s *Store) DeleteFriendship(_ context.Context, a, b string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.friends[a], b)
	delete(s.friends[b], a)
	return nil
}

func (s *Store) Friends(_ context.Context, personID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.friends[personID].sorted(), nil
}

func (s *Store) OwnedItems(_ context.Context, personID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.owns[personID]))
	for item := range s.owns[personID] {
		out = append(out, item)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) Owns(_ context.Context, personID, itemID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.owns[personID][itemID]
	return ok, nil
}

func (s *Store) PersonIDs(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persons.sorted(), nil
}

func (s *Store) ItemIDs(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.items))
	for id := range s.items {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// AcquiredAt returns the timestamp on the OWNS edge, if any.
func (s *Store) AcquiredAt(personID, itemID string) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	at, ok := s.owns[personID][itemID]
	return at, ok
}
