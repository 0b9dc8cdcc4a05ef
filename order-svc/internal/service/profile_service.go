package service

import (
	"context"
	"errors"
	"strings"

	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/authz"
	"lunchbox-marketplace/order-svc/internal/domain"

	"go.uber.org/zap"
)

type ProfileInput struct {
	FullName           string
	PhoneNumber        string
	DeliveryLocationID string
}

type ProfileService struct {
	users     UserRepository
	locations LocationRepository
	authz     *authz.Authorizer
	logger    *zap.SugaredLogger
}

func NewProfileService(users UserRepository, locations LocationRepository, authorizer *authz.Authorizer, logger *zap.SugaredLogger) *ProfileService {
	return &ProfileService{users: users, locations: locations, authz: authorizer, logger: logger}
}

// Get returns the caller's profile, creating the user row on first access.
func (s *ProfileService) Get(ctx context.Context, identity auth.Identity) (*domain.User, error) {
	if err := s.authorizeSelf(identity, authz.ActionRead); err != nil {
		return nil, err
	}
	return s.provision(ctx, identity)
}

func (s *ProfileService) Update(ctx context.Context, identity auth.Identity, input ProfileInput) (*domain.User, error) {
	if err := s.authorizeSelf(identity, authz.ActionUpdate); err != nil {
		return nil, err
	}
	user, err := s.provision(ctx, identity)
	if err != nil {
		return nil, err
	}

	locationID := strings.TrimSpace(input.DeliveryLocationID)
	if locationID != "" {
		if _, err := s.locations.GetLocation(ctx, locationID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.InvalidInput("delivery location %s does not exist", locationID)
			}
			return nil, err
		}
	}

	user.FullName = strings.TrimSpace(input.FullName)
	user.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	user.DeliveryLocationID = locationID
	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) authorizeSelf(identity auth.Identity, action authz.Action) error {
	return s.authz.Authorize(identity, action, authz.Target{Resource: authz.ResourceProfile, SubjectID: identity.UserID})
}

func (s *ProfileService) provision(ctx context.Context, identity auth.Identity) (*domain.User, error) {
	user, err := s.users.GetUser(ctx, identity.UserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	user = &domain.User{ID: identity.UserID, Role: identity.Role}
	if err := s.users.UpsertUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Infow("user provisioned", "user_id", user.ID, "role", user.Role)
	return user, nil
}
