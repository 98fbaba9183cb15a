package bonfire

import (
	"context"
	"time"

	analyticsuc "github.com/kailas-cloud/bonfire/internal/usecase/analytics"
	cataloguc "github.com/kailas-cloud/bonfire/internal/usecase/catalog"
	joinuc "github.com/kailas-cloud/bonfire/internal/usecase/join"
)

// PersonService manages profiles, friendships and per-person insights.
type PersonService struct {
	catalog   *cataloguc.Service
	join      *joinuc.Service
	analytics *analyticsuc.Service
	obs       *observer
}

// Create stores a new profile and its graph node.
func (s *PersonService) Create(ctx context.Context, p Person) (_ Person, _ Warnings, err error) {
	start := time.Now()
	defer func() { s.obs.observe("person.create", start, err) }()

	return s.catalog.CreatePerson(s.obs.context(ctx), p)
}

// Get retrieves a profile by id.
func (s *PersonService) Get(ctx context.Context, id string) (Person, error) {
	return observed(ctx, s.obs, "person.get", func(ctx context.Context) (Person, error) {
		return s.catalog.GetPerson(ctx, id)
	})
}

// List returns one page of profiles.
func (s *PersonService) List(ctx context.Context, limit, offset int) (Page[Person], error) {
	return observed(ctx, s.obs, "person.list", func(ctx context.Context) (Page[Person], error) {
		return s.catalog.ListPersons(ctx, limit, offset)
	})
}

// Update applies a partial update.
func (s *PersonService) Update(ctx context.Context, id string, patch PersonPatch) (Person, error) {
	return observed(ctx, s.obs, "person.update", func(ctx context.Context) (Person, error) {
		return s.catalog.UpdatePerson(ctx, id, patch)
	})
}

// Delete removes the profile and its graph node with every edge on it.
func (s *PersonService) Delete(ctx context.Context, id string) (_ Warnings, err error) {
	start := time.Now()
	defer func() { s.obs.observe("person.delete", start, err) }()

	return s.catalog.DeletePerson(s.obs.context(ctx), id)
}

// AddFriend links two people. Adding an existing friendship is a no-op.
func (s *PersonService) AddFriend(ctx context.Context, personID, friendID string) error {
	return observedErr(ctx, s.obs, "person.add_friend", func(ctx context.Context) error {
		return s.catalog.AddFriend(ctx, personID, friendID)
	})
}

// RemoveFriend unlinks two people.
func (s *PersonService) RemoveFriend(ctx context.Context, personID, friendID string) error {
	return observedErr(ctx, s.obs, "person.remove_friend", func(ctx context.Context) error {
		return s.catalog.RemoveFriend(ctx, personID, friendID)
	})
}

// Friends lists the person's friends.
func (s *PersonService) Friends(ctx context.Context, id string) ([]Person, error) {
	return observed(ctx, s.obs, "person.friends", func(ctx context.Context) ([]Person, error) {
		return s.join.Friends(ctx, id)
	})
}

// Library lists the items the person owns.
func (s *PersonService) Library(ctx context.Context, id string) ([]Item, error) {
	return observed(ctx, s.obs, "person.library", func(ctx context.Context) ([]Item, error) {
		return s.join.Library(ctx, id)
	})
}

// Recommendations suggests items the person's friends own.
func (s *PersonService) Recommendations(ctx context.Context, id string, limit int) ([]Recommendation, error) {
	return observed(ctx, s.obs, "person.recommendations", func(ctx context.Context) ([]Recommendation, error) {
		return s.join.FriendRecommendations(ctx, id, limit)
	})
}

// PopularTags ranks tags across the friends' libraries.
func (s *PersonService) PopularTags(ctx context.Context, id string, limit int) ([]PopularTag, error) {
	return observed(ctx, s.obs, "person.popular_tags", func(ctx context.Context) ([]PopularTag, error) {
		return s.join.PopularTags(ctx, id, limit)
	})
}

// Buddies lists friends ranked by shared items.
func (s *PersonService) Buddies(ctx context.Context, id string, limit int) ([]Buddy, error) {
	return observed(ctx, s.obs, "person.buddies", func(ctx context.Context) ([]Buddy, error) {
		return s.join.GamingBuddies(ctx, id, limit)
	})
}

// Spending summarizes the person's purchases.
func (s *PersonService) Spending(ctx context.Context, id string) (SpendingSummary, error) {
	return observed(ctx, s.obs, "person.spending", func(ctx context.Context) (SpendingSummary, error) {
		return s.analytics.PersonSpending(ctx, id)
	})
}
