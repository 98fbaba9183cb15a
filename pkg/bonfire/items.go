package bonfire

import (
	"context"
	"time"

	analyticsuc "github.com/kailas-cloud/bonfire/internal/usecase/analytics"
	cataloguc "github.com/kailas-cloud/bonfire/internal/usecase/catalog"
	joinuc "github.com/kailas-cloud/bonfire/internal/usecase/join"
)

// ItemService manages catalog items.
type ItemService struct {
	catalog *cataloguc.Service
	join    *joinuc.Service
	obs     *observer
}

// Create stores a new item and links its tags in the graph.
// A failed graph write is returned as a warning, not an error.
func (s *ItemService) Create(ctx context.Context, it Item) (_ Item, _ Warnings, err error) {
	start := time.Now()
	defer func() { s.obs.observe("item.create", start, err) }()

	return s.catalog.CreateItem(s.obs.context(ctx), it)
}

// Get retrieves an item by id.
func (s *ItemService) Get(ctx context.Context, id string) (Item, error) {
	return observed(ctx, s.obs, "item.get", func(ctx context.Context) (Item, error) {
		return s.catalog.GetItem(ctx, id)
	})
}

// List returns one page of items. Zero limit means the default page size.
func (s *ItemService) List(ctx context.Context, limit, offset int) (Page[Item], error) {
	return observed(ctx, s.obs, "item.list", func(ctx context.Context) (Page[Item], error) {
		return s.catalog.ListItems(ctx, limit, offset)
	})
}

// Update applies a partial update. Setting TagNames replaces the item's tag set.
func (s *ItemService) Update(ctx context.Context, id string, patch ItemPatch) (_ Item, _ Warnings, err error) {
	start := time.Now()
	defer func() { s.obs.observe("item.update", start, err) }()

	return s.catalog.UpdateItem(s.obs.context(ctx), id, patch)
}

// Delete removes the item and its graph node.
func (s *ItemService) Delete(ctx context.Context, id string) (_ Warnings, err error) {
	start := time.Now()
	defer func() { s.obs.observe("item.delete", start, err) }()

	return s.catalog.DeleteItem(s.obs.context(ctx), id)
}

// AlsoBought lists items bought by people who own id.
func (s *ItemService) AlsoBought(ctx context.Context, id string, limit int) ([]AlsoBought, error) {
	return observed(ctx, s.obs, "item.also_bought", func(ctx context.Context) ([]AlsoBought, error) {
		return s.join.AlsoBought(ctx, id, limit)
	})
}

// Similar lists items sharing tags with id.
func (s *ItemService) Similar(ctx context.Context, id string, limit int) ([]SimilarItem, error) {
	return observed(ctx, s.obs, "item.similar", func(ctx context.Context) ([]SimilarItem, error) {
		return s.join.SimilarByTags(ctx, id, limit)
	})
}

// StatsService computes catalog-wide aggregations.
type StatsService struct {
	analytics *analyticsuc.Service
	obs       *observer
}

// TopRated ranks items by mean review rating.
func (s *StatsService) TopRated(ctx context.Context, limit int) ([]TopRatedItem, error) {
	return observed(ctx, s.obs, "stats.top_rated", func(ctx context.Context) ([]TopRatedItem, error) {
		return s.analytics.TopRated(ctx, limit)
	})
}

// Platforms counts items and average price per platform.
func (s *StatsService) Platforms(ctx context.Context) ([]PlatformStat, error) {
	return observed(ctx, s.obs, "stats.platforms", func(ctx context.Context) ([]PlatformStat, error) {
		return s.analytics.PlatformStats(ctx)
	})
}
