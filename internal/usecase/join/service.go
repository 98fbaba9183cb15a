package join

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/bonfire/internal/domain"
	"github.com/kailas-cloud/bonfire/internal/logger"
	"github.com/kailas-cloud/bonfire/internal/metrics"
)

// Operation names used in logs and metric labels.
const (
	OpFriendRecommendations = "friend_recommendations"
	OpAlsoBought            = "also_bought"
	OpPopularTags           = "popular_tags"
	OpGamingBuddies         = "gaming_buddies"
	OpSimilarByTags         = "similar_by_tags"
	OpLibrary               = "library"
	OpFriends               = "friends"
)

// Service composes graph traversals with document lookups.
// Ranked results keep the graph's order; entries whose primary record is
// missing from the document store are dropped, not reported as errors.
type Service struct {
	graph    Graph
	items    ItemReader
	persons  PersonReader
	maxLimit int
}

// New creates a join service.
func New(g Graph, items ItemReader, persons PersonReader) *Service {
	return &Service{graph: g, items: items, persons: persons, maxLimit: MaxLimit}
}

// WithMaxLimit overrides the result-size ceiling.
func (s *Service) WithMaxLimit(n int) *Service {
	if n > 0 {
		s.maxLimit = n
	}
	return s
}

// FriendRecommendations suggests items owned by personID's friends.
func (s *Service) FriendRecommendations(ctx context.Context, personID string, limit int) ([]domain.Recommendation, error) {
	defer observe(OpFriendRecommendations, time.Now())
	limit, err := s.prepare(personID, limit, DefaultRecommendationLimit)
	if err != nil {
		return nil, err
	}

	recs, err := s.graph.RecommendByFriends(ctx, personID, limit)
	if err != nil {
		return nil, fmt.Errorf("recommend by friends: %w", err)
	}
	if len(recs) == 0 {
		return []domain.Recommendation{}, nil
	}

	itemIDs := make([]string, len(recs))
	var friendIDs []string
	for i, r := range recs {
		itemIDs[i] = r.ItemID
		friendIDs = append(friendIDs, r.FriendIDs...)
	}
	items, persons, err := s.resolve(ctx, itemIDs, friendIDs)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Recommendation, 0, len(recs))
	for _, r := range recs {
		item, ok := items[r.ItemID]
		if !ok {
			continue
		}
		names := personNames(r.FriendIDs, persons)
		out = append(out, domain.Recommendation{
			Item:        item,
			FriendCount: r.FriendCount,
			FriendNames: names,
			Reason:      reason(r.FriendCount, names),
		})
	}
	dropped(ctx, OpFriendRecommendations, len(recs)-len(out))
	return out, nil
}

// AlsoBought lists items frequently owned together with itemID.
func (s *Service) AlsoBought(ctx context.Context, itemID string, limit int) ([]domain.AlsoBought, error) {
	defer observe(OpAlsoBought, time.Now())
	limit, err := s.prepare(itemID, limit, DefaultLimit)
	if err != nil {
		return nil, err
	}

	co, err := s.graph.AlsoOwned(ctx, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("also owned: %w", err)
	}
	if len(co) == 0 {
		return []domain.AlsoBought{}, nil
	}

	itemIDs := make([]string, len(co))
	var ownerIDs []string
	for i, c := range co {
		itemIDs[i] = c.ItemID
		ownerIDs = append(ownerIDs, c.OwnerIDs...)
	}
	items, persons, err := s.resolve(ctx, itemIDs, ownerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AlsoBought, 0, len(co))
	for _, c := range co {
		item, ok := items[c.ItemID]
		if !ok {
			continue
		}
		out = append(out, domain.AlsoBought{
			Item:         item,
			CoOwnerCount: c.OwnerCount,
			OwnerNames:   personNames(c.OwnerIDs, persons),
		})
	}
	dropped(ctx, OpAlsoBought, len(co)-len(out))
	return out, nil
}

// PopularTags ranks tags among the items owned by personID's friends.
// A limit of 0 returns the full ranking.
func (s *Service) PopularTags(ctx context.Context, personID string, limit int) ([]domain.PopularTag, error) {
	defer observe(OpPopularTags, time.Now())
	limit, err := s.prepare(personID, limit, 0)
	if err != nil {
		return nil, err
	}

	tags, err := s.graph.PopularTags(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("popular tags: %w", err)
	}
	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	if len(tags) == 0 {
		return []domain.PopularTag{}, nil
	}

	var friendIDs []string
	for _, t := range tags {
		friendIDs = append(friendIDs, t.FriendIDs...)
	}
	_, persons, err := s.resolve(ctx, nil, friendIDs)
	if err != nil {
		return nil, err
	}

	// Tags are graph-native, so there is no primary record to lose.
	out := make([]domain.PopularTag, len(tags))
	for i, t := range tags {
		out[i] = domain.PopularTag{
			Tag:         t.Tag,
			ItemCount:   t.ItemCount,
			FriendCount: t.FriendCount,
			FriendNames: personNames(t.FriendIDs, persons),
		}
	}
	return out, nil
}

// GamingBuddies finds non-friends who own many of the same items as personID.
func (s *Service) GamingBuddies(ctx context.Context, personID string, limit int) ([]domain.Buddy, error) {
	defer observe(OpGamingBuddies, time.Now())
	limit, err := s.prepare(personID, limit, DefaultLimit)
	if err != nil {
		return nil, err
	}

	buddies, err := s.graph.GamingBuddies(ctx, personID, limit)
	if err != nil {
		return nil, fmt.Errorf("gaming buddies: %w", err)
	}
	if len(buddies) == 0 {
		return []domain.Buddy{}, nil
	}

	personIDs := make([]string, len(buddies))
	var itemIDs []string
	for i, b := range buddies {
		personIDs[i] = b.PersonID
		itemIDs = append(itemIDs, b.SharedItemIDs...)
	}
	items, persons, err := s.resolve(ctx, itemIDs, personIDs)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Buddy, 0, len(buddies))
	for _, b := range buddies {
		person, ok := persons[b.PersonID]
		if !ok {
			continue
		}
		out = append(out, domain.Buddy{
			Person:       person,
			SharedCount:  b.SharedCount,
			SharedTitles: itemTitles(b.SharedItemIDs, items),
		})
	}
	dropped(ctx, OpGamingBuddies, len(buddies)-len(out))
	return out, nil
}

// SimilarByTags lists items sharing tags with itemID.
func (s *Service) SimilarByTags(ctx context.Context, itemID string, limit int) ([]domain.SimilarItem, error) {
	defer observe(OpSimilarByTags, time.Now())
	limit, err := s.prepare(itemID, limit, DefaultLimit)
	if err != nil {
		return nil, err
	}

	similar, err := s.graph.SimilarByTags(ctx, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("similar by tags: %w", err)
	}
	if len(similar) == 0 {
		return []domain.SimilarItem{}, nil
	}

	itemIDs := make([]string, len(similar))
	for i, sim := range similar {
		itemIDs[i] = sim.ItemID
	}
	items, _, err := s.resolve(ctx, itemIDs, nil)
	if err != nil {
		return nil, err
	}

	out := make([]domain.SimilarItem, 0, len(similar))
	for _, sim := range similar {
		item, ok := items[sim.ItemID]
		if !ok {
			continue
		}
		out = append(out, domain.SimilarItem{
			Item:           item,
			SharedTagCount: sim.SharedCount,
			SharedTags:     sim.SharedTags,
		})
	}
	dropped(ctx, OpSimilarByTags, len(similar)-len(out))
	return out, nil
}

// Library resolves the items owned by personID, ordered by item id.
func (s *Service) Library(ctx context.Context, personID string) ([]domain.Item, error) {
	if err := domain.ValidateID(personID); err != nil {
		return nil, err
	}
	ids, err := s.graph.OwnedItems(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("owned items: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Item{}, nil
	}
	items, _, err := s.resolve(ctx, ids, nil)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		if it, ok := items[id]; ok {
			out = append(out, it)
		}
	}
	dropped(ctx, OpLibrary, len(ids)-len(out))
	return out, nil
}

// Friends resolves the friend profiles of personID, ordered by person id.
func (s *Service) Friends(ctx context.Context, personID string) ([]domain.Person, error) {
	if err := domain.ValidateID(personID); err != nil {
		return nil, err
	}
	ids, err := s.graph.Friends(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("friends: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Person{}, nil
	}
	_, persons, err := s.resolve(ctx, nil, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Person, 0, len(ids))
	for _, id := range ids {
		if p, ok := persons[id]; ok {
			out = append(out, p)
		}
	}
	dropped(ctx, OpFriends, len(ids)-len(out))
	return out, nil
}

func (s *Service) prepare(id string, limit, def int) (int, error) {
	if err := domain.ValidateID(id); err != nil {
		return 0, err
	}
	return normalizeLimit(limit, def, s.maxLimit)
}

// resolve fetches items and persons concurrently, one batch per collection.
// Identifiers that are not well-formed cannot have a record and are skipped.
func (s *Service) resolve(ctx context.Context, itemIDs, personIDs []string) (
	map[string]domain.Item, map[string]domain.Person, error,
) {
	itemIDs = distinctValid(itemIDs)
	personIDs = distinctValid(personIDs)

	var items []domain.Item
	var persons []domain.Person
	g, gctx := errgroup.WithContext(ctx)
	if len(itemIDs) > 0 {
		g.Go(func() error {
			var err error
			if items, err = s.items.GetMany(gctx, itemIDs); err != nil {
				return fmt.Errorf("fetch items: %w", err)
			}
			return nil
		})
	}
	if len(personIDs) > 0 {
		g.Go(func() error {
			var err error
			if persons, err = s.persons.GetMany(gctx, personIDs); err != nil {
				return fmt.Errorf("fetch persons: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	itemMap := make(map[string]domain.Item, len(items))
	for _, it := range items {
		itemMap[it.ID] = it
	}
	personMap := make(map[string]domain.Person, len(persons))
	for _, p := range persons {
		personMap[p.ID] = p
	}
	return itemMap, personMap, nil
}

func distinctValid(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if domain.ValidateID(id) != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}

// personNames maps ids to display names, omitting unresolved ids.
func personNames(ids []string, persons map[string]domain.Person) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if p, ok := persons[id]; ok {
			names = append(names, p.Name())
		}
	}
	return names
}

func itemTitles(ids []string, items map[string]domain.Item) []string {
	titles := make([]string, 0, len(ids))
	for _, id := range ids {
		if it, ok := items[id]; ok {
			titles = append(titles, it.Title)
		}
	}
	return titles
}

func reason(count int, names []string) string {
	verb := "own"
	if count == 1 {
		verb = "owns"
	}
	if len(names) == 0 {
		return fmt.Sprintf("%d of your friends %s this item", count, verb)
	}
	return fmt.Sprintf("%d of your friends (%s) %s this item", count, strings.Join(names, ", "), verb)
}

func dropped(ctx context.Context, op string, n int) {
	if n <= 0 {
		return
	}
	metrics.JoinDroppedTotal.WithLabelValues(op).Add(float64(n))
	logger.FromContext(ctx).Debug("dropped dangling references",
		zap.String("operation", op),
		zap.Int("dropped", n),
	)
}

func observe(op string, start time.Time) {
	metrics.JoinDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
