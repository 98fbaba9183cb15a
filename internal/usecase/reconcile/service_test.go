package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbmemory "github.com/kailas-cloud/bonfire/internal/db/memory"
	"github.com/kailas-cloud/bonfire/internal/domain"
	graphmemory "github.com/kailas-cloud/bonfire/internal/graph/memory"
	"github.com/kailas-cloud/bonfire/internal/repository/document"
)

type stores struct {
	items   *document.Repo[domain.Item, domain.ItemPatch, *domain.Item]
	persons *document.Repo[domain.Person, domain.PersonPatch, *domain.Person]
	graph   *graphmemory.Store
}

func newStores() stores {
	db := dbmemory.NewStore()
	return stores{
		items:   document.New[domain.Item, domain.ItemPatch](db, "test:", domain.CollectionItems),
		persons: document.New[domain.Person, domain.PersonPatch](db, "test:", domain.CollectionPersons),
		graph:   graphmemory.NewStore(),
	}
}

// seed builds one consistent person and item plus one drift of every kind.
func seed(t *testing.T, s stores) (inSync, ghostPerson, ghostItem, lonelyPerson string, lonelyItem domain.Item) {
	t.Helper()
	ctx := context.Background()

	p := &domain.Person{Handle: "a", Email: "a@x"}
	require.NoError(t, s.persons.Create(ctx, p))
	require.NoError(t, s.graph.MergePerson(ctx, p.ID))

	lp := &domain.Person{Handle: "b", Email: "b@x"}
	require.NoError(t, s.persons.Create(ctx, lp))

	li := &domain.Item{Title: "Hades", TagNames: []string{"roguelike"}}
	require.NoError(t, s.items.Create(ctx, li))

	ghostPerson = domain.NewID()
	ghostItem = domain.NewID()
	require.NoError(t, s.graph.MergePerson(ctx, ghostPerson))
	require.NoError(t, s.graph.MergeItem(ctx, ghostItem, nil))

	return p.ID, ghostPerson, ghostItem, lp.ID, *li
}

func TestSweep_DryRunOnlyReports(t *testing.T) {
	s := newStores()
	_, ghostPerson, ghostItem, lonelyPerson, lonelyItem := seed(t, s)
	ctx := context.Background()

	r, err := New(s.graph, s.persons, s.items).Sweep(ctx, true)
	require.NoError(t, err)
	assert.True(t, r.DryRun)
	assert.Equal(t, []string{ghostPerson}, r.DanglingPersons)
	assert.Equal(t, []string{ghostItem}, r.DanglingItems)
	assert.Equal(t, []string{lonelyPerson}, r.MissingPersons)
	assert.Equal(t, []string{lonelyItem.ID}, r.MissingItems)
	assert.Equal(t, 4, r.Repairs())

	ids, err := s.graph.PersonIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, ghostPerson)
	assert.NotContains(t, ids, lonelyPerson)
}

func TestSweep_Repairs(t *testing.T) {
	s := newStores()
	inSync, ghostPerson, _, lonelyPerson, lonelyItem := seed(t, s)
	ctx := context.Background()
	svc := New(s.graph, s.persons, s.items)

	r, err := svc.Sweep(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, r.Failures)

	persons, err := s.graph.PersonIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{inSync, lonelyPerson}, persons)
	assert.NotContains(t, persons, ghostPerson)

	items, err := s.graph.ItemIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{lonelyItem.ID}, items)

	again, err := svc.Sweep(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, again.Repairs())
}

type failingGraph struct {
	*graphmemory.Store
}

func (failingGraph) MergePerson(context.Context, string) error { return errors.New("down") }

func TestSweep_RepairFailureRecorded(t *testing.T) {
	s := newStores()
	seed(t, s)

	r, err := New(failingGraph{s.graph}, s.persons, s.items).Sweep(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, r.Failures, 1)
	assert.Contains(t, r.Failures[0], "merged person")
}

type brokenIndex struct{}

func (brokenIndex) IDs(context.Context) ([]string, error) { return nil, domain.ErrUnavailable }

func TestSweep_ListErrorAborts(t *testing.T) {
	s := newStores()
	_, err := New(s.graph, brokenIndex{}, s.items).Sweep(context.Background(), false)
	require.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestDifference(t *testing.T) {
	a, b, c := domain.NewID(), domain.NewID(), domain.NewID()
	got := difference([]string{c, a, "junk", b, a}, []string{b})
	want := []string{a, c}
	if a > c {
		want = []string{c, a}
	}
	assert.Equal(t, want, got)
	assert.Empty(t, difference(nil, []string{a}))
}
