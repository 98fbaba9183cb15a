package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbmemory "github.com/kailas-cloud/bonfire/internal/db/memory"
	"github.com/kailas-cloud/bonfire/internal/domain"
	graphmemory "github.com/kailas-cloud/bonfire/internal/graph/memory"
	"github.com/kailas-cloud/bonfire/internal/repository/document"
)

var errGraphDown = errors.New("graph down")

// flakyGraph wraps the in-memory graph and fails writes on demand.
type flakyGraph struct {
	*graphmemory.Store
	failWrites bool
	failOwns   bool
}

func (g *flakyGraph) MergePerson(ctx context.Context, id string) error {
	if g.failWrites {
		return errGraphDown
	}
	return g.Store.MergePerson(ctx, id)
}

func (g *flakyGraph) MergeItem(ctx context.Context, id string, tags []string) error {
	if g.failWrites {
		return errGraphDown
	}
	return g.Store.MergeItem(ctx, id, tags)
}

func (g *flakyGraph) SetItemTags(ctx context.Context, id string, tags []string) error {
	if g.failWrites {
		return errGraphDown
	}
	return g.Store.SetItemTags(ctx, id, tags)
}

func (g *flakyGraph) DeleteItem(ctx context.Context, id string) error {
	if g.failWrites {
		return errGraphDown
	}
	return g.Store.DeleteItem(ctx, id)
}

func (g *flakyGraph) Owns(ctx context.Context, p, i string) (bool, error) {
	if g.failOwns {
		return false, errGraphDown
	}
	return g.Store.Owns(ctx, p, i)
}

type fixture struct {
	svc   *Service
	graph *flakyGraph
	repos Repositories
}

// slowPersons widens the window between the balance read and the deduction.
type slowPersons struct {
	Repository[domain.Person, domain.PersonPatch]
	delay time.Duration
}

func (r slowPersons) Get(ctx context.Context, id string) (domain.Person, error) {
	time.Sleep(r.delay)
	return r.Repository.Get(ctx, id)
}

// brokenWallet fails every person update.
type brokenWallet struct {
	Repository[domain.Person, domain.PersonPatch]
}

func (brokenWallet) Update(context.Context, string, domain.PersonPatch) (domain.Person, error) {
	return domain.Person{}, errors.New("store down")
}

func newFixture(t *testing.T, wrap ...func(*Repositories)) *fixture {
	t.Helper()
	store := dbmemory.NewStore()
	repos := Repositories{
		Items:        document.New[domain.Item, domain.ItemPatch](store, "test:", domain.CollectionItems),
		Persons:      document.New[domain.Person, domain.PersonPatch](store, "test:", domain.CollectionPersons),
		Reviews:      document.New[domain.Review, domain.ReviewPatch](store, "test:", domain.CollectionReviews),
		Publishers:   document.New[domain.Publisher, domain.PublisherPatch](store, "test:", domain.CollectionPublishers),
		Transactions: document.New[domain.Transaction, domain.NoPatch](store, "test:", domain.CollectionTransactions),
	}
	for _, w := range wrap {
		w(&repos)
	}
	g := &flakyGraph{Store: graphmemory.NewStore()}
	return &fixture{svc: New(repos, g), graph: g, repos: repos}
}

func (f *fixture) person(t *testing.T, handle string, balance float64) domain.Person {
	t.Helper()
	p, w, err := f.svc.CreatePerson(context.Background(), domain.Person{Handle: handle, Email: handle + "@example.com", Balance: balance})
	require.NoError(t, err)
	require.Empty(t, w)
	return p
}

func (f *fixture) item(t *testing.T, title string, price float64, tags ...string) domain.Item {
	t.Helper()
	it, w, err := f.svc.CreateItem(context.Background(), domain.Item{Title: title, Price: price, TagNames: tags})
	require.NoError(t, err)
	require.Empty(t, w)
	return it
}

func ptr[T any](v T) *T { return &v }

func TestCreateItem_WritesBothStores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	it := f.item(t, "Hades", 24.99, " Roguelike ", "action", "Roguelike")
	assert.NotEmpty(t, it.ID)
	assert.Equal(t, []string{"Roguelike", "action"}, it.TagNames)

	ids, err := f.graph.ItemIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{it.ID}, ids)

	got, err := f.svc.GetItem(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hades", got.Title)
}

func TestCreateItem_Invalid(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.svc.CreateItem(context.Background(), domain.Item{Title: " "})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCreateItem_GraphFailureIsWarning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.graph.failWrites = true

	it, w, err := f.svc.CreateItem(ctx, domain.Item{Title: "Celeste", Price: 19.99})
	require.NoError(t, err)
	require.Len(t, w, 1)
	assert.Equal(t, domain.WarningGraphSyncFailed, w[0].Code)

	// The document stays.
	_, err = f.svc.GetItem(ctx, it.ID)
	require.NoError(t, err)
}

func TestUpdateItem_TagsReplaced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := f.item(t, "Hades", 24.99, "action")

	tags := []string{" roguelike ", "roguelike"}
	updated, w, err := f.svc.UpdateItem(ctx, it.ID, domain.ItemPatch{TagNames: &tags})
	require.NoError(t, err)
	assert.Empty(t, w)
	assert.Equal(t, []string{"roguelike"}, updated.TagNames)
	assert.Equal(t, "Hades", updated.Title)

	// The dropped "action" link is gone, so another action game no longer matches.
	other := f.item(t, "Doom", 19.99, "action")
	similar, err := f.graph.SimilarByTags(ctx, other.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, similar)
	similar, err = f.graph.SimilarByTags(ctx, it.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, similar)

	f.graph.failWrites = true
	_, w, err = f.svc.UpdateItem(ctx, it.ID, domain.ItemPatch{Title: ptr("Hades II")})
	require.NoError(t, err)
	assert.Empty(t, w, "no tag change means no graph write")
}

func TestUpdateItem_NotFound(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.svc.UpdateItem(context.Background(), domain.NewID(), domain.ItemPatch{Title: ptr("x")})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := f.item(t, "Hades", 24.99)

	w, err := f.svc.DeleteItem(ctx, it.ID)
	require.NoError(t, err)
	assert.Empty(t, w)

	ids, err := f.graph.ItemIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = f.svc.DeleteItem(ctx, it.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteItem_GraphFailureIsWarning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	it := f.item(t, "Hades", 24.99)
	f.graph.failWrites = true

	w, err := f.svc.DeleteItem(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, w, 1)

	_, err = f.svc.GetItem(ctx, it.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPersons_Pagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, h := range []string{"a", "b", "c"} {
		f.person(t, h, 0)
	}

	pg, err := f.svc.ListPersons(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, pg.Total)
	assert.Len(t, pg.Items, 2)
	assert.Equal(t, 2, pg.Limit)

	pg, err = f.svc.ListPersons(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, pg.Items, 1)
	assert.Equal(t, 20, pg.Limit)

	pg, err = f.svc.ListPersons(ctx, 1000, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, pg.Limit)

	_, err = f.svc.ListPersons(ctx, -1, 0)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = f.svc.ListPersons(ctx, 1, -1)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAddFriend(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.person(t, "a", 0)
	b := f.person(t, "b", 0)

	require.NoError(t, f.svc.AddFriend(ctx, a.ID, b.ID))
	friends, err := f.graph.Friends(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, friends)

	require.NoError(t, f.svc.RemoveFriend(ctx, b.ID, a.ID))
	friends, err = f.graph.Friends(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestAddFriend_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.person(t, "a", 0)

	require.ErrorIs(t, f.svc.AddFriend(ctx, a.ID, a.ID), domain.ErrInvalidArgument)
	require.ErrorIs(t, f.svc.AddFriend(ctx, a.ID, "nope"), domain.ErrInvalidArgument)
	require.ErrorIs(t, f.svc.AddFriend(ctx, a.ID, domain.NewID()), domain.ErrNotFound)
}

func TestAddFriend_HealsMissingNode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.graph.failWrites = true
	a, w, err := f.svc.CreatePerson(ctx, domain.Person{Handle: "a", Email: "a@x"})
	require.NoError(t, err)
	require.Len(t, w, 1)
	f.graph.failWrites = false

	b := f.person(t, "b", 0)
	require.NoError(t, f.svc.AddFriend(ctx, a.ID, b.ID))
	ids, err := f.graph.PersonIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestCreateReview_ReferencesMustExist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "a", 0)
	it := f.item(t, "Hades", 10)

	r, err := f.svc.CreateReview(ctx, domain.Review{PersonID: p.ID, ItemID: it.ID, Rating: 5, Recommended: true})
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)

	_, err = f.svc.CreateReview(ctx, domain.Review{PersonID: p.ID, ItemID: domain.NewID(), Rating: 5})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.CreateReview(ctx, domain.Review{PersonID: p.ID, ItemID: it.ID, Rating: 9})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	require.NoError(t, f.svc.DeleteReview(ctx, r.ID))
	require.ErrorIs(t, f.svc.DeleteReview(ctx, r.ID), domain.ErrNotFound)
}

func TestPublisherCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.CreatePublisher(ctx, domain.Publisher{Name: "Supergiant"})
	require.NoError(t, err)

	p, err = f.svc.UpdatePublisher(ctx, p.ID, domain.PublisherPatch{Country: ptr("US")})
	require.NoError(t, err)
	assert.Equal(t, "Supergiant", p.Name)
	assert.Equal(t, "US", p.Country)
	assert.NotNil(t, p.UpdatedAt)

	pg, err := f.svc.ListPublishers(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, pg.Total)

	require.NoError(t, f.svc.DeletePublisher(ctx, p.ID))
	_, err = f.svc.GetPublisher(ctx, p.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurchase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "a", 50)
	it := f.item(t, "Hades", 24.99)

	receipt, err := f.svc.Purchase(ctx, domain.PurchaseRequest{PersonID: p.ID, ItemID: it.ID})
	require.NoError(t, err)
	assert.Empty(t, receipt.Warnings)
	assert.InDelta(t, 25.01, receipt.NewBalance, 1e-9)
	assert.InDelta(t, 24.99, receipt.Transaction.AmountPaid, 1e-9)
	assert.NotEmpty(t, receipt.Transaction.ID)

	got, err := f.svc.GetPerson(ctx, p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 25.01, got.Balance, 1e-9)

	owned, err := f.graph.Owns(ctx, p.ID, it.ID)
	require.NoError(t, err)
	assert.True(t, owned)

	_, ok := f.graph.AcquiredAt(p.ID, it.ID)
	assert.True(t, ok)

	txs, err := f.svc.ListTransactions(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, txs.Total)
}

func TestPurchase_ExplicitAmount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "a", 10)
	it := f.item(t, "Hades", 24.99)

	receipt, err := f.svc.Purchase(ctx, domain.PurchaseRequest{PersonID: p.ID, ItemID: it.ID, AmountPaid: ptr(10.0)})
	require.NoError(t, err)
	assert.Zero(t, receipt.NewBalance)
}

func TestPurchase_AlreadyOwned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "a", 0)
	it := f.item(t, "Hades", 24.99)
	require.NoError(t, f.graph.MergeOwnership(ctx, p.ID, it.ID, it.CreatedAt))

	// Ownership is checked before funds.
	_, err := f.svc.Purchase(ctx, domain.PurchaseRequest{PersonID: p.ID, ItemID: it.ID})
	require.ErrorIs(t, err, domain.ErrAlreadyOwned)
}

func TestPurchase_InsufficientFunds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "a", 5)
	it := f.item(t, "Hades", 24.99)

	_, err := f.svc.Purchase(ctx, domain.PurchaseRequest{PersonID: p.ID, ItemID: it.ID})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	txs, err := f.svc.ListTransactions(ctx, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, txs.Total)
}

func TestPurchase_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "a", 5)

	_, err := f.svc.Purchase(ctx, domain.PurchaseRequest{PersonID: p.ID, ItemID: domain.NewID()})
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.svc.Purchase(ctx, domain.PurchaseRequest{PersonID: domain.NewID(), ItemID: domain.NewID()})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurchase_OwnershipCheckFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "a", 50)
	it := f.item(t, "Hades", 24.99)
	f.graph.failOwns = true

	_, err := f.svc.Purchase(ctx, domain.PurchaseRequest{PersonID: p.ID, ItemID: it.ID})
	require.ErrorIs(t, err, errGraphDown)

	got, err := f.svc.GetPerson(ctx, p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, got.Balance, 1e-9)
}

func TestPurchase_EdgeFailureIsWarning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "a", 50)
	it := f.item(t, "Hades", 24.99)
	// Drop the person node so the OWNS merge cannot find an endpoint.
	require.NoError(t, f.graph.Store.DeletePerson(ctx, p.ID))

	receipt, err := f.svc.Purchase(ctx, domain.PurchaseRequest{PersonID: p.ID, ItemID: it.ID})
	require.NoError(t, err)
	require.Len(t, receipt.Warnings, 1)
	assert.Equal(t, domain.WarningGraphSyncFailed, receipt.Warnings[0].Code)
	assert.InDelta(t, 25.01, receipt.NewBalance, 1e-9)
}

func TestRevokeOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "a", 50)
	it := f.item(t, "Hades", 24.99)
	_, err := f.svc.Purchase(ctx, domain.PurchaseRequest{PersonID: p.ID, ItemID: it.ID})
	require.NoError(t, err)

	require.NoError(t, f.svc.RevokeOwnership(ctx, p.ID, it.ID))
	owned, err := f.graph.Owns(ctx, p.ID, it.ID)
	require.NoError(t, err)
	assert.False(t, owned)
}

func TestPurchase_ConcurrentSpendsBalanceOnce(t *testing.T) {
	f := newFixture(t, func(r *Repositories) {
		r.Persons = slowPersons{Repository: r.Persons, delay: 20 * time.Millisecond}
	})
	ctx := context.Background()
	p := f.person(t, "a", 100)
	items := make([]domain.Item, 4)
	for i := range items {
		items[i] = f.item(t, fmt.Sprintf("Game %d", i), 60)
	}

	errs := make([]error, len(items))
	var wg sync.WaitGroup
	for i, it := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.svc.Purchase(ctx, domain.PurchaseRequest{PersonID: p.ID, ItemID: it.ID})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	}
	assert.Equal(t, 1, succeeded)

	txs, err := f.svc.ListTransactions(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, txs.Total)
	got, err := f.svc.GetPerson(ctx, p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, got.Balance, 1e-9)
}

func TestPurchase_ConcurrentSameItemOwnedOnce(t *testing.T) {
	f := newFixture(t, func(r *Repositories) {
		r.Persons = slowPersons{Repository: r.Persons, delay: 10 * time.Millisecond}
	})
	ctx := context.Background()
	p := f.person(t, "a", 100)
	it := f.item(t, "Hades", 10)

	errs := make([]error, 3)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.svc.Purchase(ctx, domain.PurchaseRequest{PersonID: p.ID, ItemID: it.ID})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrAlreadyOwned)
	}
	assert.Equal(t, 1, succeeded)
	got, err := f.svc.GetPerson(ctx, p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, got.Balance, 1e-9)
}

func TestPurchase_FailedDeductionLeavesNoTransaction(t *testing.T) {
	f := newFixture(t, func(r *Repositories) {
		r.Persons = brokenWallet{Repository: r.Persons}
	})
	ctx := context.Background()
	p := f.person(t, "a", 50)
	it := f.item(t, "Hades", 24.99)

	_, err := f.svc.Purchase(ctx, domain.PurchaseRequest{PersonID: p.ID, ItemID: it.ID})
	require.ErrorContains(t, err, "deduct balance")

	txs, err := f.svc.ListTransactions(ctx, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, txs.Total)
	owned, err := f.graph.Owns(ctx, p.ID, it.ID)
	require.NoError(t, err)
	assert.False(t, owned)

	// Nothing was charged, so a retry starts clean.
	got, err := f.svc.GetPerson(ctx, p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, got.Balance, 1e-9)
}
