package catalog

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/bonfire/internal/domain"
)

// CreatePerson stores the profile and then merges its graph node.
func (s *Service) CreatePerson(ctx context.Context, p domain.Person) (domain.Person, domain.Warnings, error) {
	if err := p.Validate(); err != nil {
		return domain.Person{}, nil, err
	}
	if err := s.persons.Create(ctx, &p); err != nil {
		return domain.Person{}, nil, fmt.Errorf("create person: %w", err)
	}

	var w domain.Warnings
	if err := s.graph.MergePerson(ctx, p.ID); err != nil {
		s.graphWarning(ctx, &w, "create_person", err)
	}
	return p, w, nil
}

func (s *Service) GetPerson(ctx context.Context, id string) (domain.Person, error) {
	return getOne(ctx, s.persons, "person", id)
}

func (s *Service) ListPersons(ctx context.Context, limit, offset int) (domain.Page[domain.Person], error) {
	return page(ctx, s, s.persons, limit, offset)
}

func (s *Service) UpdatePerson(ctx context.Context, id string, patch domain.PersonPatch) (domain.Person, error) {
	if err := domain.ValidateID(id); err != nil {
		return domain.Person{}, err
	}
	if err := patch.Validate(); err != nil {
		return domain.Person{}, err
	}
	p, err := s.persons.Update(ctx, id, patch)
	if err != nil {
		return domain.Person{}, fmt.Errorf("update person: %w", err)
	}
	return p, nil
}

// DeletePerson removes the profile and then the graph node with its edges.
func (s *Service) DeletePerson(ctx context.Context, id string) (domain.Warnings, error) {
	if err := deleteOne(ctx, s.persons, "person", id); err != nil {
		return nil, err
	}
	var w domain.Warnings
	if err := s.graph.DeletePerson(ctx, id); err != nil {
		s.graphWarning(ctx, &w, "delete_person", err)
	}
	return w, nil
}

// AddFriend links two existing persons. Missing graph nodes are merged first.
func (s *Service) AddFriend(ctx context.Context, personID, friendID string) error {
	if err := domain.ValidateIDs([]string{personID, friendID}); err != nil {
		return err
	}
	if personID == friendID {
		return domain.InvalidArgument("a person cannot befriend themselves")
	}
	for _, id := range []string{personID, friendID} {
		if err := requireExists(ctx, s.persons, "person", id); err != nil {
			return err
		}
		if err := s.graph.MergePerson(ctx, id); err != nil {
			return fmt.Errorf("merge person node: %w", err)
		}
	}
	if err := s.graph.MergeFriendship(ctx, personID, friendID); err != nil {
		return fmt.Errorf("merge friendship: %w", err)
	}
	return nil
}

// RemoveFriend deletes the friendship edge if present.
func (s *Service) RemoveFriend(ctx context.Context, personID, friendID string) error {
	if err := domain.ValidateIDs([]string{personID, friendID}); err != nil {
		return err
	}
	if err := s.graph.DeleteFriendship(ctx, personID, friendID); err != nil {
		return fmt.Errorf("delete friendship: %w", err)
	}
	return nil
}
