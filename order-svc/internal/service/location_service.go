package service

import (
	"context"
	"errors"

	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/authz"
	"lunchbox-marketplace/order-svc/internal/domain"

	"go.uber.org/zap"
)

type LocationInput struct {
	Name     string
	Address  string
	IsActive bool
}

type BuildingInput struct {
	Name     string
	IsActive bool
}

type LocationService struct {
	locations LocationRepository
	authz     *authz.Authorizer
	logger    *zap.SugaredLogger
}

func NewLocationService(locations LocationRepository, authorizer *authz.Authorizer, logger *zap.SugaredLogger) *LocationService {
	return &LocationService{locations: locations, authz: authorizer, logger: logger}
}

// ListLocations returns active locations. Only callers allowed to manage
// locations may ask for inactive ones too.
func (s *LocationService) ListLocations(ctx context.Context, identity auth.Identity, includeInactive bool) ([]domain.DeliveryLocation, error) {
	if includeInactive {
		if err := s.authz.Check(identity, authz.ResourceDeliveryLocation, authz.ActionUpdate); err != nil {
			return nil, err
		}
	}
	return s.locations.ListLocations(ctx, !includeInactive)
}

func (s *LocationService) CreateLocation(ctx context.Context, identity auth.Identity, input LocationInput) (*domain.DeliveryLocation, error) {
	if err := s.authz.Authorize(identity, authz.ActionCreate, authz.Target{Resource: authz.ResourceDeliveryLocation}); err != nil {
		return nil, err
	}
	loc := &domain.DeliveryLocation{Name: input.Name, Address: input.Address, IsActive: input.IsActive}
	if err := s.locations.CreateLocation(ctx, loc); err != nil {
		return nil, err
	}
	s.logger.Infow("delivery location created", "location_id", loc.ID)
	return loc, nil
}

func (s *LocationService) UpdateLocation(ctx context.Context, identity auth.Identity, id string, input LocationInput) (*domain.DeliveryLocation, error) {
	if err := s.authz.Authorize(identity, authz.ActionUpdate, authz.Target{Resource: authz.ResourceDeliveryLocation}); err != nil {
		return nil, err
	}
	loc, err := s.locations.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	loc.Name = input.Name
	loc.Address = input.Address
	loc.IsActive = input.IsActive
	if err := s.locations.UpdateLocation(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *LocationService) DeleteLocation(ctx context.Context, identity auth.Identity, id string) error {
	if err := s.authz.Authorize(identity, authz.ActionDelete, authz.Target{Resource: authz.ResourceDeliveryLocation}); err != nil {
		return err
	}
	return s.locations.DeleteLocation(ctx, id)
}

func (s *LocationService) ListBuildings(ctx context.Context, locationID string) ([]domain.DeliveryBuilding, error) {
	return s.locations.ListBuildings(ctx, locationID)
}

func (s *LocationService) CreateBuilding(ctx context.Context, identity auth.Identity, locationID string, input BuildingInput) (*domain.DeliveryBuilding, error) {
	if err := s.authz.Authorize(identity, authz.ActionCreate, authz.Target{Resource: authz.ResourceDeliveryBuilding}); err != nil {
		return nil, err
	}
	if _, err := s.locations.GetLocation(ctx, locationID); err != nil {
		return nil, err
	}
	b := &domain.DeliveryBuilding{DeliveryLocationID: locationID, Name: input.Name, IsActive: input.IsActive}
	if err := s.locations.CreateBuilding(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *LocationService) UpdateBuilding(ctx context.Context, identity auth.Identity, id string, input BuildingInput) (*domain.DeliveryBuilding, error) {
	if err := s.authz.Authorize(identity, authz.ActionUpdate, authz.Target{Resource: authz.ResourceDeliveryBuilding}); err != nil {
		return nil, err
	}
	b, err := s.locations.GetBuilding(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Name = input.Name
	b.IsActive = input.IsActive
	if err := s.locations.UpdateBuilding(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *LocationService) DeleteBuilding(ctx context.Context, identity auth.Identity, id string) error {
	if err := s.authz.Authorize(identity, authz.ActionDelete, authz.Target{Resource: authz.ResourceDeliveryBuilding}); err != nil {
		return err
	}
	return s.locations.DeleteBuilding(ctx, id)
}

// activeBuildings loads the given buildings and keeps the active ones, in the
// order requested.
func activeBuildings(ctx context.Context, locations LocationRepository, ids []string) ([]domain.DeliveryBuilding, error) {
	if len(ids) == 0 {
		return []domain.DeliveryBuilding{}, nil
	}
	loaded, err := locations.GetBuildings(ctx, ids)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	byID := make(map[string]domain.DeliveryBuilding, len(loaded))
	for _, b := range loaded {
		byID[b.ID] = b
	}
	out := make([]domain.DeliveryBuilding, 0, len(ids))
	for _, id := range ids {
		if b, ok := byID[id]; ok && b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}
