package middleware

import (
	"net/http"

	"github.com/baharkarakas/farm-backend/internal/api/httpx"
	"github.com/baharkarakas/farm-backend/internal/auth"
	"github.com/baharkarakas/farm-backend/internal/metrics"
)

// Decision is the outcome of a role check.
type Decision int

const (
	Allow Decision = iota
	Unauthenticated
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Unauthenticated:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Gate admits callers holding one of a fixed set of roles.
// Roles match exactly; an empty set admits nobody.
type Gate struct {
	roles   []string
	allowed map[string]struct{}
}

func NewGate(roles ...string) Gate {
	g := Gate{
		roles:   append([]string(nil), roles...),
		allowed: make(map[string]struct{}, len(roles)),
	}
	for _, r := range roles {
		g.allowed[r] = struct{}{}
	}
	return g
}

// Roles returns the configured roles in registration order.
func (g Gate) Roles() []string { return append([]string(nil), g.roles...) }

func (g Gate) Decide(u *auth.User) Decision {
	if u == nil {
		return Unauthenticated
	}
	if _, ok := g.allowed[u.Role]; !ok {
		return Forbidden
	}
	return Allow
}

func (g Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, _ := auth.UserFrom(r.Context())
		switch d := g.Decide(u); d {
		case Unauthenticated:
			metrics.AuthzDenied.WithLabelValues(d.String()).Inc()
			httpx.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		case Forbidden:
			metrics.AuthzDenied.WithLabelValues(d.String()).Inc()
			httpx.WriteMessage(w, http.StatusForbidden, "Forbidden")
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// Authorize is shorthand for NewGate(roles...).Middleware, for use with chi's r.With / r.Use.
func Authorize(roles ...string) func(http.Handler) http.Handler {
	return NewGate(roles...).Middleware
}
