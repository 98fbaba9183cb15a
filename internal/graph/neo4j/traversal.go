package neo4j

import (
	"context"

	"github.com/kailas-cloud/bonfire/internal/graph"
)

// Every ranking query orders by its count and then by identifier so equal
// counts come back in a stable order.
const (
	recommendByFriendsQuery = `
MATCH (p:Person {personId: $personId})-[:FRIENDS_WITH]-(friend:Person)-[:OWNS]->(i:Item)
WHERE NOT (p)-[:OWNS]->(i)
WITH i.itemId AS itemId, COLLECT(DISTINCT friend.personId) AS friendIds
RETURN itemId, size(friendIds) AS friendCount, friendIds
ORDER BY friendCount DESC, itemId ASC`

	alsoOwnedQuery = `
MATCH (u:Person)-[:OWNS]->(target:Item {itemId: $itemId}), (u)-[:OWNS]->(other:Item)
WHERE other <> target
WITH other.itemId AS itemId, COLLECT(DISTINCT u.personId) AS ownerIds
RETURN itemId, size(ownerIds) AS ownerCount, ownerIds
ORDER BY ownerCount DESC, itemId ASC`

	popularTagsQuery = `
MATCH (p:Person {personId: $personId})-[:FRIENDS_WITH]-(friend:Person)-[:OWNS]->(i:Item)-[:TAGGED_WITH]->(t:Tag)
WITH t.name AS tag, COUNT(DISTINCT i) AS itemCount, COLLECT(DISTINCT friend.personId) AS friendIds
RETURN tag, itemCount, size(friendIds) AS friendCount, friendIds
ORDER BY itemCount DESC, friendCount DESC, tag ASC`

	gamingBuddiesQuery = `
MATCH (p:Person {personId: $personId})-[:OWNS]->(i:Item)<-[:OWNS]-(other:Person)
WHERE other <> p AND NOT (p)-[:FRIENDS_WITH]-(other)
WITH other.personId AS personId, COLLECT(DISTINCT i.itemId) AS itemIds
RETURN personId, size(itemIds) AS sharedCount, itemIds
ORDER BY sharedCount DESC, personId ASC`

	similarByTagsQuery = `
MATCH (target:Item {itemId: $itemId})-[:TAGGED_WITH]->(t:Tag)<-[:TAGGED_WITH]-(other:Item)
WHERE other <> target
WITH other.itemId AS itemId, COLLECT(DISTINCT t.name) AS tags
RETURN itemId, size(tags) AS sharedCount, tags
ORDER BY sharedCount DESC, itemId ASC`
)

// withLimit appends a LIMIT clause when limit is positive.
func withLimit(q string, params map[string]any, limit int) string {
	if limit <= 0 {
		return q
	}
	params["limit"] = int64(limit)
	return q + "\nLIMIT $limit"
}

func (s *Store) RecommendByFriends(ctx context.Context, personID string, limit int) ([]graph.FriendRecommendation, error) {
	params := map[string]any{"personId": personID}
	res, err := s.run(ctx, "recommend by friends", withLimit(recommendByFriendsQuery, params, limit), params)
	if err != nil {
		return nil, err
	}
	out := make([]graph.FriendRecommendation, 0, len(res.Records))
	for _, rec := range res.Records {
		out = append(out, graph.FriendRecommendation{
			ItemID:      getString(rec, "itemId"),
			FriendCount: getInt(rec, "friendCount"),
			FriendIDs:   getSortedStrings(rec, "friendIds"),
		})
	}
	return out, nil
}

func (s *Store) AlsoOwned(ctx context.Context, itemID string, limit int) ([]graph.CoOwnership, error) {
	params := map[string]any{"itemId": itemID}
	res, err := s.run(ctx, "also owned", withLimit(alsoOwnedQuery, params, limit), params)
	if err != nil {
		return nil, err
	}
	out := make([]graph.CoOwnership, 0, len(res.Records))
	for _, rec := range res.Records {
		out = append(out, graph.CoOwnership{
			ItemID:     getString(rec, "itemId"),
			OwnerCount: getInt(rec, "ownerCount"),
			OwnerIDs:   getSortedStrings(rec, "ownerIds"),
		})
	}
	return out, nil
}

func (s *Store) PopularTags(ctx context.Context, personID string) ([]graph.TagPopularity, error) {
	res, err := s.run(ctx, "popular tags", popularTagsQuery, map[string]any{"personId": personID})
	if err != nil {
		return nil, err
	}
	out := make([]graph.TagPopularity, 0, len(res.Records))
	for _, rec := range res.Records {
		out = append(out, graph.TagPopularity{
			Tag:         getString(rec, "tag"),
			ItemCount:   getInt(rec, "itemCount"),
			FriendCount: getInt(rec, "friendCount"),
			FriendIDs:   getSortedStrings(rec, "friendIds"),
		})
	}
	return out, nil
}

func (s *Store) GamingBuddies(ctx context.Context, personID string, limit int) ([]graph.Buddy, error) {
	params := map[string]any{"personId": personID}
	res, err := s.run(ctx, "gaming buddies", withLimit(gamingBuddiesQuery, params, limit), params)
	if err != nil {
		return nil, err
	}
	out := make([]graph.Buddy, 0, len(res.Records))
	for _, rec := range res.Records {
		out = append(out, graph.Buddy{
			PersonID:      getString(rec, "personId"),
			SharedCount:   getInt(rec, "sharedCount"),
			SharedItemIDs: getSortedStrings(rec, "itemIds"),
		})
	}
	return out, nil
}

func (s *Store) SimilarByTags(ctx context.Context, itemID string, limit int) ([]graph.TagSimilarity, error) {
	params := map[string]any{"itemId": itemID}
	res, err := s.run(ctx, "similar by tags", withLimit(similarByTagsQuery, params, limit), params)
	if err != nil {
		return nil, err
	}
	out := make([]graph.TagSimilarity, 0, len(res.Records))
	for _, rec := range res.Records {
		out = append(out, graph.TagSimilarity{
			ItemID:      getString(rec, "itemId"),
			SharedCount: getInt(rec, "sharedCount"),
			SharedTags:  getSortedStrings(rec, "tags"),
		})
	}
	return out, nil
}
