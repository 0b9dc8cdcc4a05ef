package service

import (
	"context"
	"strings"

	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/order-svc/internal/cart"
	"lunchbox-marketplace/order-svc/internal/domain"

	"go.uber.org/zap"
)

// SessionKey picks the cart session for a request. An explicit session
// header wins; signed-in callers without one fall back to a per-user key.
// Header values live under their own prefix so they never name a user cart.
func SessionKey(identity auth.Identity, header string) (string, error) {
	if header = strings.TrimSpace(header); header != "" {
		return "session:" + header, nil
	}
	if !identity.IsAnonymous() && identity.UserID != "" {
		return "user:" + identity.UserID, nil
	}
	return "", domain.ErrMissingSession
}

type CartService struct {
	store       CartStore
	restaurants RestaurantRepository
	menu        MenuItemRepository
	opts        cart.Options
	logger      *zap.SugaredLogger
}

func NewCartService(store CartStore, restaurants RestaurantRepository, menu MenuItemRepository,
	opts cart.Options, logger *zap.SugaredLogger) *CartService {
	return &CartService{
		store:       store,
		restaurants: restaurants,
		menu:        menu,
		opts:        opts,
		logger:      logger,
	}
}

func (s *CartService) Get(ctx context.Context, identity auth.Identity, sessionKey string) (*cart.Cart, error) {
	c, dirty, err := s.load(ctx, identity, sessionKey)
	if err != nil {
		return nil, err
	}
	if dirty {
		if err := s.store.Save(ctx, sessionKey, c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddItem snapshots the menu item and its restaurant into the cart.
func (s *CartService) AddItem(ctx context.Context, identity auth.Identity, sessionKey, menuItemID string) (*cart.Cart, error) {
	item, err := s.menu.GetMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable {
		return nil, domain.ErrItemUnavailable
	}
	rest, err := s.restaurants.GetRestaurant(ctx, item.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !rest.IsActive {
		return nil, domain.ErrRestaurantUnavailable
	}

	return s.mutate(ctx, identity, sessionKey, func(c *cart.Cart) error {
		return c.AddItem(*item, rest.Name, rest.DeliveryFee, s.opts)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, identity auth.Identity, sessionKey, menuItemID string) (*cart.Cart, error) {
	return s.mutate(ctx, identity, sessionKey, func(c *cart.Cart) error {
		c.RemoveItem(menuItemID)
		return nil
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, identity auth.Identity, sessionKey, menuItemID string, quantity int) (*cart.Cart, error) {
	return s.mutate(ctx, identity, sessionKey, func(c *cart.Cart) error {
		return c.UpdateQuantity(menuItemID, quantity)
	})
}

// Clear drops the stored cart and returns an empty one bound to the caller.
func (s *CartService) Clear(ctx context.Context, identity auth.Identity, sessionKey string) (*cart.Cart, error) {
	c, _, err := s.load(ctx, identity, sessionKey)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, sessionKey); err != nil {
		return nil, err
	}
	c.Clear()
	return c, nil
}

func (s *CartService) mutate(ctx context.Context, identity auth.Identity, sessionKey string, fn func(*cart.Cart) error) (*cart.Cart, error) {
	c, _, err := s.load(ctx, identity, sessionKey)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sessionKey, c); err != nil {
		return nil, err
	}
	return c, nil
}

// load fetches the session cart and binds it to the caller. dirty reports
// whether binding changed the stored cart.
func (s *CartService) load(ctx context.Context, identity auth.Identity, sessionKey string) (*cart.Cart, bool, error) {
	if sessionKey == "" {
		return nil, false, domain.ErrMissingSession
	}
	c, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		return nil, false, err
	}
	ownerID := identity.UserID
	if identity.IsAnonymous() {
		ownerID = ""
	}
	previous := c.OwnerID
	if cleared := c.BindOwner(ownerID); cleared {
		s.logger.Infow("cart cleared on identity change", "session", sessionKey, "previous_owner", previous, "owner", ownerID)
	}
	return c, previous != ownerID, nil
}
