// Package groupclasses manages group classes and their registrations.
package groupclasses

import (
	"context"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/groupclass"
	"github.com/irongym/backend/internal/app/storage"
	"github.com/irongym/backend/pkg/logger"
)

// Service manages group class records, their trainer reference and the
// registered client list.
type Service struct {
	clients  storage.ClientStore
	trainers storage.TrainerStore
	store    storage.GroupClassStore
	log      *logger.Logger
}

// New constructs a group class service.
func New(clients storage.ClientStore, trainers storage.TrainerStore, store storage.GroupClassStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("groupclasses")
	}
	return &Service{clients: clients, trainers: trainers, store: store, log: log}
}

// Create registers a group class after validating its fields and the
// optional trainer reference.
func (s *Service) Create(ctx context.Context, g groupclass.GroupClass) (groupclass.GroupClass, error) {
	if err := s.validate(ctx, g); err != nil {
		return groupclass.GroupClass{}, err
	}

	created, err := s.store.CreateGroupClass(ctx, g)
	if err != nil {
		return groupclass.GroupClass{}, err
	}
	s.log.WithField("group_class_id", created.ID).
		WithField("name", created.Name).
		Info("group class created")
	return created, nil
}

// Update replaces the group class with the given id.
func (s *Service) Update(ctx context.Context, id string, g groupclass.GroupClass) (groupclass.GroupClass, error) {
	if _, err := s.store.GetGroupClass(ctx, id); err != nil {
		return groupclass.GroupClass{}, err
	}
	g.ID = id
	if err := s.validate(ctx, g); err != nil {
		return groupclass.GroupClass{}, err
	}

	updated, err := s.store.UpdateGroupClass(ctx, g)
	if err != nil {
		return groupclass.GroupClass{}, err
	}
	s.log.WithField("group_class_id", id).Info("group class updated")
	return updated, nil
}

// Get retrieves a group class by identifier.
func (s *Service) Get(ctx context.Context, id string) (groupclass.GroupClass, error) {
	return s.store.GetGroupClass(ctx, id)
}

// List returns all group classes in insertion order.
func (s *Service) List(ctx context.Context) ([]groupclass.GroupClass, error) {
	return s.store.ListGroupClasses(ctx)
}

// Delete removes a group class by identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteGroupClass(ctx, id); err != nil {
		return err
	}
	s.log.WithField("group_class_id", id).Info("group class deleted")
	return nil
}

// RegisterClient adds a client to the class, enforcing existence, capacity
// and no duplicate registration.
func (s *Service) RegisterClient(ctx context.Context, classID, clientID string) (groupclass.GroupClass, error) {
	g, err := s.store.GetGroupClass(ctx, classID)
	if err != nil {
		return groupclass.GroupClass{}, err
	}
	if _, err := s.clients.GetClient(ctx, clientID); err != nil {
		if apperr.IsNotFound(err) {
			return groupclass.GroupClass{}, apperr.Invalid("clientId", "client "+clientID+" does not exist")
		}
		return groupclass.GroupClass{}, err
	}
	if g.HasClient(clientID) {
		return groupclass.GroupClass{}, apperr.Conflict("group class", "client %s already registered in %s", clientID, classID)
	}
	if g.Full() {
		return groupclass.GroupClass{}, apperr.Conflict("group class", "class %s is at capacity (%d)", classID, g.MaxCapacity)
	}

	g.ClientIDs = append(g.ClientIDs, clientID)
	updated, err := s.store.UpdateGroupClass(ctx, g)
	if err != nil {
		return groupclass.GroupClass{}, err
	}
	s.log.WithField("group_class_id", classID).
		WithField("client_id", clientID).
		Info("client registered in class")
	return updated, nil
}

// UnregisterClient removes a client from the class.
func (s *Service) UnregisterClient(ctx context.Context, classID, clientID string) (groupclass.GroupClass, error) {
	g, err := s.store.GetGroupClass(ctx, classID)
	if err != nil {
		return groupclass.GroupClass{}, err
	}
	if !g.HasClient(clientID) {
		return groupclass.GroupClass{}, apperr.NotFound("registration", clientID)
	}

	kept := make([]string, 0, len(g.ClientIDs))
	for _, id := range g.ClientIDs {
		if id != clientID {
			kept = append(kept, id)
		}
	}
	g.ClientIDs = kept
	updated, err := s.store.UpdateGroupClass(ctx, g)
	if err != nil {
		return groupclass.GroupClass{}, err
	}
	s.log.WithField("group_class_id", classID).
		WithField("client_id", clientID).
		Info("client unregistered from class")
	return updated, nil
}

func (s *Service) validate(ctx context.Context, g groupclass.GroupClass) error {
	v := apperr.NewValidation()
	if g.Name == "" {
		v.Add("name", "name is required")
	}
	if g.MaxCapacity <= 0 {
		v.Add("maxCapacity", "maxCapacity must be positive")
	} else if len(g.ClientIDs) > g.MaxCapacity {
		v.Add("clientIds", "registered clients exceed maxCapacity")
	}
	if g.TrainerID != "" {
		if _, err := s.trainers.GetTrainer(ctx, g.TrainerID); err != nil {
			if apperr.IsNotFound(err) {
				v.Add("trainerId", "trainer "+g.TrainerID+" does not exist")
			} else {
				return err
			}
		}
	}
	for _, clientID := range g.ClientIDs {
		if _, err := s.clients.GetClient(ctx, clientID); err != nil {
			if apperr.IsNotFound(err) {
				v.Add("clientIds", "client "+clientID+" does not exist")
				break
			}
			return err
		}
	}
	return v.ErrOrNil()
}
