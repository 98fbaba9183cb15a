package memory

import (
	"context"
	"sort"

	"github.com/kailas-cloud/bonfire/internal/graph"
)

// group collects distinct members per key, e.g. recommending friends per item.
type group map[string]set

func (g group) add(key, member string) {
	m, ok := g[key]
	if !ok {
		m = make(set)
		g[key] = m
	}
	m[member] = struct{}{}
}

// ranked orders keys by member count desc, key asc and applies limit (<=0 = all).
func (g group) ranked(limit int) []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := len(g[keys[i]]), len(g[keys[j]])
		if ci != cj {
			return ci > cj
		}
		return keys[i] < keys[j]
	})
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

func (s *Store) RecommendByFriends(_ context.Context, personID string, limit int) ([]graph.FriendRecommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	own := s.owns[personID]
	recs := make(group)
	for friend := range s.friends[personID] {
		for item := range s.owns[friend] {
			if _, mine := own[item]; mine {
				continue
			}
			recs.add(item, friend)
		}
	}

	keys := recs.ranked(limit)
	out := make([]graph.FriendRecommendation, len(keys))
	for i, item := range keys {
		out[i] = graph.FriendRecommendation{
			ItemID:      item,
			FriendCount: len(recs[item]),
			FriendIDs:   recs[item].sorted(),
		}
	}
	return out, nil
}

func (s *Store) AlsoOwned(_ context.Context, itemID string, limit int) ([]graph.CoOwnership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	co := make(group)
	for owner := range s.ownedBy[itemID] {
		for other := range s.owns[owner] {
			if other == itemID {
				continue
			}
			co.add(other, owner)
		}
	}

	keys := co.ranked(limit)
	out := make([]graph.CoOwnership, len(keys))
	for i, item := range keys {
		out[i] = graph.CoOwnership{
			ItemID:     item,
			OwnerCount: len(co[item]),
			OwnerIDs:   co[item].sorted(),
		}
	}
	return out, nil
}

func (s *Store) PopularTags(_ context.Context, personID string) ([]graph.TagPopularity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	itemsPerTag := make(group)
	friendsPerTag := make(group)
	for friend := range s.friends[personID] {
		for item := range s.owns[friend] {
			for tag := range s.items[item] {
				itemsPerTag.add(tag, item)
				friendsPerTag.add(tag, friend)
			}
		}
	}

	out := make([]graph.TagPopularity, 0, len(itemsPerTag))
	for tag, items := range itemsPerTag {
		out = append(out, graph.TagPopularity{
			Tag:         tag,
			ItemCount:   len(items),
			FriendCount: len(friendsPerTag[tag]),
			FriendIDs:   friendsPerTag[tag].sorted(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ItemCount != out[j].ItemCount {
			return out[i].ItemCount > out[j].ItemCount
		}
		if out[i].FriendCount != out[j].FriendCount {
			return out[i].FriendCount > out[j].FriendCount
		}
		return out[i].Tag < out[j].Tag
	})
	return out, nil
}

func (s *Store) GamingBuddies(_ context.Context, personID string, limit int) ([]graph.Buddy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	friends := s.friends[personID]
	shared := make(group)
	for item := range s.owns[personID] {
		for other := range s.ownedBy[item] {
			if other == personID {
				continue
			}
			if _, isFriend := friends[other]; isFriend {
				continue
			}
			shared.add(other, item)
		}
	}

	keys := shared.ranked(limit)
	out := make([]graph.Buddy, len(keys))
	for i, p := range keys {
		out[i] = graph.Buddy{
			PersonID:      p,
			SharedCount:   len(shared[p]),
			SharedItemIDs: shared[p].sorted(),
		}
	}
	return out, nil
}

func (s *Store) SimilarByTags(_ context.Context, itemID string, limit int) ([]graph.TagSimilarity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target, ok := s.items[itemID]
	if !ok || len(target) == 0 {
		return []graph.TagSimilarity{}, nil
	}

	common := make(group)
	for other, tags := range s.items {
		if other == itemID {
			continue
		}
		for tag := range tags {
			if _, ok := target[tag]; ok {
				common.add(other, tag)
			}
		}
	}

	keys := common.ranked(limit)
	out := make([]graph.TagSimilarity, len(keys))
	for i, item := range keys {
		out[i] = graph.TagSimilarity{
			ItemID:      item,
			SharedCount: len(common[item]),
			SharedTags:  common[item].sorted(),
		}
	}
	return out, nil
}
