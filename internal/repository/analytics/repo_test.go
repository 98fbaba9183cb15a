package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/bonfire/internal/domain"
)

// fakeCollection serves a fixed record set.
type fakeCollection[T any] struct {
	records  []T
	id       func(T) string
	err      error
	getCalls int
}

func (f *fakeCollection[T]) All(context.Context) ([]T, error) {
	return f.records, f.err
}

func (f *fakeCollection[T]) GetMany(_ context.Context, ids []string) ([]T, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []T
	for _, r := range f.records {
		if want[f.id(r)] {
			out = append(out, r)
		}
	}
	return out, nil
}

func newFakes() (
	*fakeCollection[domain.Item],
	*fakeCollection[domain.Review],
	*fakeCollection[domain.Publisher],
	*fakeCollection[domain.Transaction],
) {
	return &fakeCollection[domain.Item]{id: func(i domain.Item) string { return i.ID }},
		&fakeCollection[domain.Review]{id: func(r domain.Review) string { return r.ID }},
		&fakeCollection[domain.Publisher]{id: func(p domain.Publisher) string { return p.ID }},
		&fakeCollection[domain.Transaction]{id: func(t domain.Transaction) string { return t.ID }}
}

func TestRepo_TopRatedJoinsItems(t *testing.T) {
	items, reviews, pubs, txs := newFakes()
	items.records = []domain.Item{{Meta: domain.Meta{ID: "g1"}, Title: "Hades", Price: 25}}
	reviews.records = []domain.Review{
		{ItemID: "g1", Rating: 5}, {ItemID: "g1", Rating: 4},
		{ItemID: "g2", Rating: 3}, {ItemID: "g2", Rating: 3},
	}
	repo := New(items, reviews, pubs, txs)

	rows, err := repo.TopRated(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[0].Title != "Hades" || rows[1].Title != "" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if items.getCalls != 1 {
		t.Errorf("expected one item fetch, got %d", items.getCalls)
	}
}

func TestRepo_TopRatedNoReviewsSkipsItemFetch(t *testing.T) {
	items, reviews, pubs, txs := newFakes()
	repo := New(items, reviews, pubs, txs)

	rows, err := repo.TopRated(context.Background(), 10)
	if err != nil || len(rows) != 0 {
		t.Fatalf("expected empty result, got %v %v", rows, err)
	}
	if items.getCalls != 0 {
		t.Error("expected no item fetch")
	}
}

func TestRepo_RevenuePerPublisher(t *testing.T) {
	items, reviews, pubs, txs := newFakes()
	items.records = []domain.Item{{Meta: domain.Meta{ID: "g1"}, PublisherID: "p1"}}
	pubs.records = []domain.Publisher{{Meta: domain.Meta{ID: "p1"}, Name: "Supergiant"}}
	txs.records = []domain.Transaction{{ItemID: "g1", AmountPaid: 10}, {ItemID: "g1", AmountPaid: 15}}
	repo := New(items, reviews, pubs, txs)

	out, err := repo.RevenuePerPublisher(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].TotalRevenue != 25 || out[0].PublisherName != "Supergiant" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestRepo_ScanErrorPropagates(t *testing.T) {
	items, reviews, pubs, txs := newFakes()
	txs.err = domain.ErrUnavailable
	repo := New(items, reviews, pubs, txs)

	_, err := repo.PersonSpending(context.Background(), "u1")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
