package authz

import (
	"errors"

	"lunchbox-marketplace/auth"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
)

type Resource string

const (
	ResourceRestaurant          Resource = "restaurant"
	ResourceMenuItem            Resource = "menu_item"
	ResourceOrder               Resource = "order"
	ResourceDeliveryLocation    Resource = "delivery_location"
	ResourceDeliveryBuilding    Resource = "delivery_building"
	ResourceProfile             Resource = "profile"
	ResourceRestaurantAnalytics Resource = "restaurant_analytics"
)

type Action string

const (
	ActionCreate       Action = "create"
	ActionRead         Action = "read"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionUpdateStatus Action = "update_status"
)

type Scope int

const (
	ScopeNone Scope = iota
	// ScopeOwn grants the action only on resources the caller owns.
	ScopeOwn
	ScopeAny
)

type Table map[auth.Role]map[Resource]map[Action]Scope

var catalogRead = map[Resource]map[Action]Scope{
	ResourceRestaurant:       {ActionRead: ScopeAny},
	ResourceMenuItem:         {ActionRead: ScopeAny},
	ResourceDeliveryLocation: {ActionRead: ScopeAny},
	ResourceDeliveryBuilding: {ActionRead: ScopeAny},
}

// DefaultTable is the marketplace permission model.
var DefaultTable = Table{
	auth.RoleAnonymous: catalogRead,
	auth.RoleCustomer: merge(catalogRead, map[Resource]map[Action]Scope{
		ResourceOrder:   {ActionCreate: ScopeOwn, ActionRead: ScopeOwn},
		ResourceProfile: {ActionRead: ScopeOwn, ActionUpdate: ScopeOwn},
	}),
	auth.RoleRestaurantOwner: merge(catalogRead, map[Resource]map[Action]Scope{
		ResourceRestaurant:          {ActionRead: ScopeAny, ActionCreate: ScopeOwn, ActionUpdate: ScopeOwn},
		ResourceMenuItem:            {ActionRead: ScopeAny, ActionCreate: ScopeOwn, ActionUpdate: ScopeOwn, ActionDelete: ScopeOwn},
		ResourceOrder:               {ActionRead: ScopeOwn, ActionUpdateStatus: ScopeOwn},
		ResourceRestaurantAnalytics: {ActionRead: ScopeOwn},
		ResourceProfile:             {ActionRead: ScopeOwn, ActionUpdate: ScopeOwn},
	}),
	auth.RoleAdmin: merge(catalogRead, map[Resource]map[Action]Scope{
		ResourceRestaurant:          {ActionRead: ScopeAny, ActionCreate: ScopeAny, ActionUpdate: ScopeAny, ActionDelete: ScopeAny},
		ResourceMenuItem:            {ActionRead: ScopeAny, ActionCreate: ScopeAny, ActionUpdate: ScopeAny, ActionDelete: ScopeAny},
		ResourceDeliveryLocation:    {ActionRead: ScopeAny, ActionCreate: ScopeAny, ActionUpdate: ScopeAny, ActionDelete: ScopeAny},
		ResourceDeliveryBuilding:    {ActionRead: ScopeAny, ActionCreate: ScopeAny, ActionUpdate: ScopeAny, ActionDelete: ScopeAny},
		ResourceOrder:               {ActionRead: ScopeAny, ActionUpdateStatus: ScopeAny},
		ResourceRestaurantAnalytics: {ActionRead: ScopeAny},
		ResourceProfile:             {ActionRead: ScopeOwn, ActionUpdate: ScopeOwn},
	}),
}

func merge(base, extra map[Resource]map[Action]Scope) map[Resource]map[Action]Scope {
	out := make(map[Resource]map[Action]Scope, len(base)+len(extra))
	for resource, actions := range base {
		out[resource] = actions
	}
	for resource, actions := range extra {
		out[resource] = actions
	}
	return out
}

// Target describes the resource instance being acted on. SubjectID is the
// user the resource belongs to (order customer, profile user); RestaurantOwnerID
// is the owner of the restaurant the resource hangs off. Ownership values must
// come from storage, never from the request body.
type Target struct {
	Resource          Resource
	SubjectID         string
	RestaurantOwnerID string
}

type Authorizer struct {
	table Table
}

func New(table Table) *Authorizer {
	return &Authorizer{table: table}
}

func NewDefault() *Authorizer {
	return New(DefaultTable)
}

func (a *Authorizer) Scope(role auth.Role, resource Resource, action Action) Scope {
	if role == "" {
		role = auth.RoleAnonymous
	}
	return a.table[role][resource][action]
}

// Permits reports whether the role holds the action on the resource type at
// all. Services call it before loading a resource so that callers with no
// capability are denied without learning whether the resource exists.
func (a *Authorizer) Permits(role auth.Role, resource Resource, action Action) bool {
	return a.Scope(role, resource, action) != ScopeNone
}

// Check is the role-level gate used before a lookup.
func (a *Authorizer) Check(identity auth.Identity, resource Resource, action Action) error {
	if a.Permits(identity.Role, resource, action) {
		return nil
	}
	if identity.IsAnonymous() {
		return ErrUnauthenticated
	}
	return ErrForbidden
}

// Authorize is the single decision point for an action on a concrete resource.
func (a *Authorizer) Authorize(identity auth.Identity, action Action, target Target) error {
	switch a.Scope(identity.Role, target.Resource, action) {
	case ScopeAny:
		return nil
	case ScopeOwn:
		if !identity.IsAnonymous() && owns(identity.UserID, target) {
			return nil
		}
		return ErrForbidden
	default:
		if identity.IsAnonymous() {
			return ErrUnauthenticated
		}
		return ErrForbidden
	}
}

// RevealsMissing reports whether a caller with this role is told that a
// resource does not exist. Everyone else receives the uniform denial.
func (a *Authorizer) RevealsMissing(role auth.Role) bool {
	return role == auth.RoleRestaurantOwner || role == auth.RoleAdmin
}

func owns(userID string, target Target) bool {
	if target.SubjectID != "" && target.SubjectID == userID {
		return true
	}
	return target.RestaurantOwnerID != "" && target.RestaurantOwnerID == userID
}
