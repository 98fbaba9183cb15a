package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/bonfire/internal/domain"
)

type mockAggregator struct {
	topRatedFn  func(ctx context.Context, limit int) ([]domain.TopRatedItem, error)
	revenueFn   func(ctx context.Context) ([]domain.PublisherRevenue, error)
	platformsFn func(ctx context.Context) ([]domain.PlatformStat, error)
	spendingFn  func(ctx context.Context, personID string) (domain.SpendingSummary, error)
}

func (m *mockAggregator) TopRated(ctx context.Context, limit int) ([]domain.TopRatedItem, error) {
	return m.topRatedFn(ctx, limit)
}

func (m *mockAggregator) RevenuePerPublisher(ctx context.Context) ([]domain.PublisherRevenue, error) {
	return m.revenueFn(ctx)
}

func (m *mockAggregator) PlatformStats(ctx context.Context) ([]domain.PlatformStat, error) {
	return m.platformsFn(ctx)
}

func (m *mockAggregator) PersonSpending(ctx context.Context, personID string) (domain.SpendingSummary, error) {
	return m.spendingFn(ctx, personID)
}

type mockPersons struct {
	exists bool
	err    error
}

func (m *mockPersons) Exists(context.Context, string) (bool, error) { return m.exists, m.err }

func TestTopRated_Limits(t *testing.T) {
	var got int
	agg := &mockAggregator{topRatedFn: func(_ context.Context, limit int) ([]domain.TopRatedItem, error) {
		got = limit
		return nil, nil
	}}
	svc := New(agg, nil)
	ctx := context.Background()

	tests := []struct {
		in, want int
	}{
		{0, 10},
		{3, 3},
		{100, 100},
		{500, 100},
	}
	for _, tt := range tests {
		_, err := svc.TopRated(ctx, tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "limit %d", tt.in)
	}

	_, err := svc.TopRated(ctx, -1)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTopRated_ErrorWrapped(t *testing.T) {
	agg := &mockAggregator{topRatedFn: func(context.Context, int) ([]domain.TopRatedItem, error) {
		return nil, domain.ErrUnavailable
	}}
	_, err := New(agg, nil).TopRated(context.Background(), 5)
	require.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestPersonSpending(t *testing.T) {
	id := domain.NewID()
	agg := &mockAggregator{spendingFn: func(_ context.Context, personID string) (domain.SpendingSummary, error) {
		return domain.SpendingSummary{PersonID: personID, TotalSpent: 12.5, ItemsBought: 2}, nil
	}}
	ctx := context.Background()

	sum, err := New(agg, &mockPersons{exists: true}).PersonSpending(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, sum.PersonID)
	assert.Equal(t, 2, sum.ItemsBought)

	_, err = New(agg, &mockPersons{}).PersonSpending(ctx, id)
	require.ErrorIs(t, err, domain.ErrNotFound)

	boom := errors.New("boom")
	_, err = New(agg, &mockPersons{err: boom}).PersonSpending(ctx, id)
	require.ErrorIs(t, err, boom)

	_, err = New(agg, nil).PersonSpending(ctx, "not-an-id")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestPassThrough(t *testing.T) {
	agg := &mockAggregator{
		revenueFn: func(context.Context) ([]domain.PublisherRevenue, error) {
			return []domain.PublisherRevenue{{PublisherName: "Supergiant"}}, nil
		},
		platformsFn: func(context.Context) ([]domain.PlatformStat, error) {
			return []domain.PlatformStat{{Platform: "pc", ItemCount: 3}}, nil
		},
	}
	svc := New(agg, nil)

	rev, err := svc.RevenuePerPublisher(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Supergiant", rev[0].PublisherName)

	ps, err := svc.PlatformStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, ps[0].ItemCount)
}
