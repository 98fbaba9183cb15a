package join

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/bonfire/internal/domain"
	"github.com/kailas-cloud/bonfire/internal/graph"
	"github.com/kailas-cloud/bonfire/internal/metrics"
)

// --- Mocks ---

type mockGraph struct {
	recs    []graph.FriendRecommendation
	co      []graph.CoOwnership
	tags    []graph.TagPopularity
	buddies []graph.Buddy
	similar []graph.TagSimilarity
	friends []string
	owned   []string
	err     error

	lastLimit int
}

func (m *mockGraph) RecommendByFriends(_ context.Context, _ string, limit int) ([]graph.FriendRecommendation, error) {
	m.lastLimit = limit
	return m.recs, m.err
}

func (m *mockGraph) AlsoOwned(_ context.Context, _ string, limit int) ([]graph.CoOwnership, error) {
	m.lastLimit = limit
	return m.co, m.err
}

func (m *mockGraph) PopularTags(context.Context, string) ([]graph.TagPopularity, error) {
	return m.tags, m.err
}

func (m *mockGraph) GamingBuddies(_ context.Context, _ string, limit int) ([]graph.Buddy, error) {
	m.lastLimit = limit
	return m.buddies, m.err
}

func (m *mockGraph) SimilarByTags(_ context.Context, _ string, limit int) ([]graph.TagSimilarity, error) {
	m.lastLimit = limit
	return m.similar, m.err
}

func (m *mockGraph) Friends(context.Context, string) ([]string, error)    { return m.friends, m.err }
func (m *mockGraph) OwnedItems(context.Context, string) ([]string, error) { return m.owned, m.err }

type mockItems struct {
	byID  map[string]domain.Item
	err   error
	calls atomic.Int32
}

func (m *mockItems) GetMany(_ context.Context, ids []string) ([]domain.Item, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Item
	for _, id := range ids {
		if it, ok := m.byID[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

type mockPersons struct {
	byID  map[string]domain.Person
	err   error
	calls atomic.Int32
}

func (m *mockPersons) GetMany(_ context.Context, ids []string) ([]domain.Person, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Person
	for _, id := range ids {
		if p, ok := m.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- Fixtures ---

var (
	me      = domain.NewID()
	ana     = domain.NewID()
	ben     = domain.NewID()
	ghost   = domain.NewID()
	hades   = domain.NewID()
	celeste = domain.NewID()
	gone    = domain.NewID()
)

func newFixture() (*Service, *mockGraph, *mockItems, *mockPersons) {
	g := &mockGraph{}
	items := &mockItems{byID: map[string]domain.Item{
		hades:   {Meta: domain.Meta{ID: hades}, Title: "Hades"},
		celeste: {Meta: domain.Meta{ID: celeste}, Title: "Celeste"},
	}}
	persons := &mockPersons{byID: map[string]domain.Person{
		ana: {Meta: domain.Meta{ID: ana}, Handle: "ana", DisplayName: "Ana"},
		ben: {Meta: domain.Meta{ID: ben}, Handle: "ben"},
	}}
	return New(g, items, persons), g, items, persons
}

// --- FriendRecommendations ---

func TestFriendRecommendations_EmptyShortCircuit(t *testing.T) {
	svc, _, items, persons := newFixture()

	out, err := svc.FriendRecommendations(context.Background(), me, 10)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
	assert.Zero(t, items.calls.Load())
	assert.Zero(t, persons.calls.Load())
}

func TestFriendRecommendations_TolerantDropKeepsOrder(t *testing.T) {
	svc, g, items, persons := newFixture()
	g.recs = []graph.FriendRecommendation{
		{ItemID: celeste, FriendCount: 2, FriendIDs: []string{ana, ben}},
		{ItemID: gone, FriendCount: 2, FriendIDs: []string{ana, ben}},
		{ItemID: hades, FriendCount: 1, FriendIDs: []string{ghost}},
	}
	before := testutil.ToFloat64(metrics.JoinDroppedTotal.WithLabelValues(OpFriendRecommendations))

	out, err := svc.FriendRecommendations(context.Background(), me, 10)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Celeste", out[0].Item.Title)
	assert.Equal(t, 2, out[0].FriendCount)
	assert.Equal(t, []string{"Ana", "ben"}, out[0].FriendNames)
	assert.Equal(t, "2 of your friends (Ana, ben) own this item", out[0].Reason)

	assert.Equal(t, "Hades", out[1].Item.Title)
	assert.Empty(t, out[1].FriendNames, "unresolved friend ids are omitted")

	assert.Equal(t, int32(1), items.calls.Load())
	assert.Equal(t, int32(1), persons.calls.Load())

	after := testutil.ToFloat64(metrics.JoinDroppedTotal.WithLabelValues(OpFriendRecommendations))
	assert.Equal(t, 1.0, after-before)
}

func TestFriendRecommendations_Limits(t *testing.T) {
	svc, g, _, _ := newFixture()
	ctx := context.Background()

	_, err := svc.FriendRecommendations(ctx, me, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultRecommendationLimit, g.lastLimit)

	_, err = svc.FriendRecommendations(ctx, me, 1000)
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, g.lastLimit)

	_, err = svc.FriendRecommendations(ctx, me, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestFriendRecommendations_MalformedID(t *testing.T) {
	svc, _, _, _ := newFixture()
	_, err := svc.FriendRecommendations(context.Background(), "nope", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestFriendRecommendations_TransientPropagates(t *testing.T) {
	svc, g, items, _ := newFixture()
	g.recs = []graph.FriendRecommendation{{ItemID: hades, FriendCount: 1, FriendIDs: []string{ana}}}
	items.err = domain.ErrUnavailable

	_, err := svc.FriendRecommendations(context.Background(), me, 5)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestFriendRecommendations_GraphErrorPropagates(t *testing.T) {
	svc, g, _, _ := newFixture()
	g.err = errors.New("boom")
	_, err := svc.FriendRecommendations(context.Background(), me, 5)
	assert.Error(t, err)
}

// --- AlsoBought ---

func TestAlsoBought(t *testing.T) {
	svc, g, _, _ := newFixture()
	g.co = []graph.CoOwnership{
		{ItemID: hades, OwnerCount: 2, OwnerIDs: []string{ana, ben}},
		{ItemID: gone, OwnerCount: 1, OwnerIDs: []string{ana}},
	}

	out, err := svc.AlsoBought(context.Background(), celeste, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, g.lastLimit)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].CoOwnerCount)
	assert.Equal(t, []string{"Ana", "ben"}, out[0].OwnerNames)
}

// --- PopularTags ---

func TestPopularTags_ZeroLimitReturnsAll(t *testing.T) {
	svc, g, items, _ := newFixture()
	g.tags = []graph.TagPopularity{
		{Tag: "rpg", ItemCount: 3, FriendCount: 2, FriendIDs: []string{ana, ben}},
		{Tag: "indie", ItemCount: 1, FriendCount: 1, FriendIDs: []string{ghost}},
	}

	out, err := svc.PopularTags(context.Background(), me, 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"Ana", "ben"}, out[0].FriendNames)
	assert.Empty(t, out[1].FriendNames)
	assert.Zero(t, items.calls.Load())

	out, err = svc.PopularTags(context.Background(), me, 1)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

// --- GamingBuddies ---

func TestGamingBuddies_DropsMissingPerson(t *testing.T) {
	svc, g, _, _ := newFixture()
	g.buddies = []graph.Buddy{
		{PersonID: ghost, SharedCount: 3, SharedItemIDs: []string{hades}},
		{PersonID: ana, SharedCount: 2, SharedItemIDs: []string{celeste, gone, hades}},
	}

	out, err := svc.GamingBuddies(context.Background(), me, 5)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ana", out[0].Person.Name())
	assert.Equal(t, []string{"Celeste", "Hades"}, out[0].SharedTitles)
}

// --- SimilarByTags ---

func TestSimilarByTags(t *testing.T) {
	svc, g, _, persons := newFixture()
	g.similar = []graph.TagSimilarity{{ItemID: celeste, SharedCount: 2, SharedTags: []string{"indie", "platformer"}}}

	out, err := svc.SimilarByTags(context.Background(), hades, 5)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].SharedTagCount)
	assert.Zero(t, persons.calls.Load())
}

// --- Library / Friends ---

func TestLibrary(t *testing.T) {
	svc, g, _, _ := newFixture()
	g.owned = []string{hades, gone}

	out, err := svc.Library(context.Background(), me)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, hades, out[0].ID)
}

func TestFriends_SkipsMalformedGraphIDs(t *testing.T) {
	svc, g, _, persons := newFixture()
	g.friends = []string{ana, "legacy-id"}

	out, err := svc.Friends(context.Background(), me)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int32(1), persons.calls.Load())
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in, def, want int
		wantErr       bool
	}{
		{0, 5, 5, false},
		{3, 5, 3, false},
		{101, 5, 100, false},
		{-1, 5, 0, true},
	}
	for _, tc := range tests {
		got, err := normalizeLimit(tc.in, tc.def, MaxLimit)
		if tc.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}
