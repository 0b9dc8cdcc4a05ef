package auth

import "context"

type Role string

const (
	RoleAnonymous       Role = "anonymous"
	RoleCustomer        Role = "customer"
	RoleRestaurantOwner Role = "restaurant_owner"
	RoleAdmin           Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleRestaurantOwner, RoleAdmin:
		return true
	}
	return false
}

// Identity is the authenticated caller of a request. The zero value is not
// used; Anonymous() is the identity of a caller without a token.
type Identity struct {
	UserID          string `json:"userId"`
	Role            Role   `json:"role"`
	ProfileComplete bool   `json:"profileComplete"`
}

func Anonymous() Identity {
	return Identity{Role: RoleAnonymous}
}

func (i Identity) IsAnonymous() bool {
	return i.UserID == "" || i.Role == RoleAnonymous || i.Role == ""
}

type contextKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

func FromContext(ctx context.Context) Identity {
	if identity, ok := ctx.Value(contextKey{}).(Identity); ok {
		return identity
	}
	return Anonymous()
}
