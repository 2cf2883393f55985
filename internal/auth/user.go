package auth

import "context"

// Roles known to the frontend. Route groups pick their allowed sets from these.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleFarmer  = "farmer"
	RoleViewer  = "viewer"
)

// User is the caller identity resolved by the gateway in front of the API.
type User struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type userKey struct{}

func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFrom returns the caller attached by middleware.Identity, if any.
func UserFrom(ctx context.Context) (*User, bool) {
	if v := ctx.Value(userKey{}); v != nil {
		if u, ok := v.(User); ok {
			return &u, true
		}
	}
	return nil, false
}
