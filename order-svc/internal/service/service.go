package service

import (
	"context"
	"errors"

	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/authz"
	"lunchbox-marketplace/order-svc/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type RestaurantInput struct {
	OwnerID            string
	Name               string
	Description        string
	Cuisine            string
	ImageURL           string
	DeliveryFee        decimal.Decimal
	DeliveryLocationID string
	IsActive           bool
}

type MenuItemInput struct {
	Name                string
	Description         string
	Price               decimal.Decimal
	ImageURL            string
	IsAvailable         bool
	DietaryTags         []string
	AvailableDays       []domain.Weekday
	EligibleBuildingIDs []string
}

type CatalogServiceInterface interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	ListOwnerRestaurants(ctx context.Context, ownerID string) ([]domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, identity auth.Identity, input RestaurantInput) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, identity auth.Identity, id string, input RestaurantInput) (*domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, identity auth.Identity, id string) error

	ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, identity auth.Identity, restaurantID string, input MenuItemInput) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, identity auth.Identity, id string, input MenuItemInput) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, identity auth.Identity, id string) error
}

type CatalogService struct {
	restaurants RestaurantRepository
	menu        MenuItemRepository
	locations   LocationRepository
	authz       *authz.Authorizer
	logger      *zap.SugaredLogger
}

func NewCatalogService(restaurants RestaurantRepository, menu MenuItemRepository, locations LocationRepository,
	authorizer *authz.Authorizer, logger *zap.SugaredLogger) *CatalogService {
	return &CatalogService{
		restaurants: restaurants,
		menu:        menu,
		locations:   locations,
		authz:       authorizer,
		logger:      logger,
	}
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.restaurants.ListRestaurants(ctx, true)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	return s.restaurants.GetRestaurant(ctx, id)
}

func (s *CatalogService) ListOwnerRestaurants(ctx context.Context, ownerID string) ([]domain.Restaurant, error) {
	return s.restaurants.ListRestaurantsByOwner(ctx, ownerID)
}

// CreateRestaurant lets admins create a restaurant for any owner and lets a
// restaurant owner register one for themselves.
func (s *CatalogService) CreateRestaurant(ctx context.Context, identity auth.Identity, input RestaurantInput) (*domain.Restaurant, error) {
	if input.OwnerID == "" {
		input.OwnerID = identity.UserID
	}
	target := authz.Target{Resource: authz.ResourceRestaurant, RestaurantOwnerID: input.OwnerID}
	if err := s.authz.Authorize(identity, authz.ActionCreate, target); err != nil {
		return nil, err
	}
	if err := s.checkLocation(ctx, input.DeliveryLocationID); err != nil {
		return nil, err
	}

	rest := &domain.Restaurant{
		OwnerID:            input.OwnerID,
		Name:               input.Name,
		Description:        input.Description,
		Cuisine:            input.Cuisine,
		ImageURL:           input.ImageURL,
		DeliveryFee:        input.DeliveryFee,
		DeliveryLocationID: input.DeliveryLocationID,
		IsActive:           input.IsActive,
	}
	if err := s.restaurants.CreateRestaurant(ctx, rest); err != nil {
		return nil, err
	}
	s.logger.Infow("restaurant created", "restaurant_id", rest.ID, "owner_id", rest.OwnerID, "by", identity.UserID)
	return rest, nil
}

func (s *CatalogService) UpdateRestaurant(ctx context.Context, identity auth.Identity, id string, input RestaurantInput) (*domain.Restaurant, error) {
	rest, err := s.loadRestaurantFor(ctx, identity, authz.ActionUpdate, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkLocation(ctx, input.DeliveryLocationID); err != nil {
		return nil, err
	}

	rest.Name = input.Name
	rest.Description = input.Description
	rest.Cuisine = input.Cuisine
	rest.ImageURL = input.ImageURL
	rest.DeliveryFee = input.DeliveryFee
	rest.DeliveryLocationID = input.DeliveryLocationID
	rest.IsActive = input.IsActive
	if err := s.restaurants.UpdateRestaurant(ctx, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *CatalogService) DeleteRestaurant(ctx context.Context, identity auth.Identity, id string) error {
	if _, err := s.loadRestaurantFor(ctx, identity, authz.ActionDelete, id); err != nil {
		return err
	}
	return s.restaurants.DeleteRestaurant(ctx, id)
}

func (s *CatalogService) ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	return s.menu.ListMenuItems(ctx, restaurantID)
}

func (s *CatalogService) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.menu.GetMenuItem(ctx, id)
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, identity auth.Identity, restaurantID string, input MenuItemInput) (*domain.MenuItem, error) {
	if err := s.authz.Check(identity, authz.ResourceMenuItem, authz.ActionCreate); err != nil {
		return nil, err
	}
	rest, err := s.restaurants.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, s.missing(identity, err)
	}
	target := authz.Target{Resource: authz.ResourceMenuItem, RestaurantOwnerID: rest.OwnerID}
	if err := s.authz.Authorize(identity, authz.ActionCreate, target); err != nil {
		return nil, err
	}
	if err := s.checkBuildings(ctx, rest, input.EligibleBuildingIDs); err != nil {
		return nil, err
	}

	item := &domain.MenuItem{RestaurantID: rest.ID}
	applyMenuItemInput(item, input)
	if err := s.menu.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, identity auth.Identity, id string, input MenuItemInput) (*domain.MenuItem, error) {
	item, rest, err := s.loadMenuItemFor(ctx, identity, authz.ActionUpdate, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkBuildings(ctx, rest, input.EligibleBuildingIDs); err != nil {
		return nil, err
	}

	applyMenuItemInput(item, input)
	if err := s.menu.UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, identity auth.Identity, id string) error {
	if _, _, err := s.loadMenuItemFor(ctx, identity, authz.ActionDelete, id); err != nil {
		return err
	}
	return s.menu.DeleteMenuItem(ctx, id)
}

// loadRestaurantFor fetches a restaurant and authorizes action against its
// stored owner.
func (s *CatalogService) loadRestaurantFor(ctx context.Context, identity auth.Identity, action authz.Action, id string) (*domain.Restaurant, error) {
	if err := s.authz.Check(identity, authz.ResourceRestaurant, action); err != nil {
		return nil, err
	}
	rest, err := s.restaurants.GetRestaurant(ctx, id)
	if err != nil {
		return nil, s.missing(identity, err)
	}
	target := authz.Target{Resource: authz.ResourceRestaurant, RestaurantOwnerID: rest.OwnerID}
	if err := s.authz.Authorize(identity, action, target); err != nil {
		return nil, err
	}
	return rest, nil
}

// loadMenuItemFor re-derives ownership through the item's restaurant.
func (s *CatalogService) loadMenuItemFor(ctx context.Context, identity auth.Identity, action authz.Action, id string) (*domain.MenuItem, *domain.Restaurant, error) {
	if err := s.authz.Check(identity, authz.ResourceMenuItem, action); err != nil {
		return nil, nil, err
	}
	item, err := s.menu.GetMenuItem(ctx, id)
	if err != nil {
		return nil, nil, s.missing(identity, err)
	}
	rest, err := s.restaurants.GetRestaurant(ctx, item.RestaurantID)
	if err != nil {
		return nil, nil, s.missing(identity, err)
	}
	target := authz.Target{Resource: authz.ResourceMenuItem, RestaurantOwnerID: rest.OwnerID}
	if err := s.authz.Authorize(identity, action, target); err != nil {
		return nil, nil, err
	}
	return item, rest, nil
}

func (s *CatalogService) missing(identity auth.Identity, err error) error {
	return hideMissing(s.authz, identity, err)
}

func (s *CatalogService) checkLocation(ctx context.Context, locationID string) error {
	if locationID == "" {
		return nil
	}
	if _, err := s.locations.GetLocation(ctx, locationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.InvalidInput("delivery location %s does not exist", locationID)
		}
		return err
	}
	return nil
}

// checkBuildings requires every eligible building to sit in the restaurant's
// delivery location.
func (s *CatalogService) checkBuildings(ctx context.Context, rest *domain.Restaurant, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if rest.DeliveryLocationID == "" {
		return domain.InvalidInput("restaurant has no delivery location")
	}
	buildings, err := s.locations.GetBuildings(ctx, ids)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(buildings))
	for _, b := range buildings {
		known[b.ID] = b.DeliveryLocationID == rest.DeliveryLocationID
	}
	for _, id := range ids {
		if !known[id] {
			return domain.InvalidInput("building %s is not part of the restaurant's delivery location", id)
		}
	}
	return nil
}

func applyMenuItemInput(item *domain.MenuItem, input MenuItemInput) {
	item.Name = input.Name
	item.Description = input.Description
	item.Price = input.Price
	item.ImageURL = input.ImageURL
	item.IsAvailable = input.IsAvailable
	item.DietaryTags = nonNil(input.DietaryTags)
	item.AvailableDays = input.AvailableDays
	if len(item.AvailableDays) == 0 {
		item.AvailableDays = append([]domain.Weekday(nil), domain.DefaultAvailableDays...)
	}
	domain.SortWeekdays(item.AvailableDays)
	item.EligibleBuildingIDs = nonNil(input.EligibleBuildingIDs)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// hideMissing turns a not-found into the uniform denial for callers who are
// not told whether a resource exists.
func hideMissing(authorizer *authz.Authorizer, identity auth.Identity, err error) error {
	if errors.Is(err, domain.ErrNotFound) && !authorizer.RevealsMissing(identity.Role) {
		return authz.ErrForbidden
	}
	return err
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
