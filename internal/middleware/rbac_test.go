package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baharkarakas/farm-backend/internal/auth"
)

// countingHandler records how many times the gate let a request through.
type countingHandler struct{ calls int }

func (h *countingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.calls++
}

func requestAs(u *auth.User) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/farms", nil)
	if u != nil {
		req = req.WithContext(auth.WithUser(context.Background(), *u))
	}
	return req
}

func TestAuthorize(t *testing.T) {
	gate := Authorize("admin", "manager")

	t.Run("allowed role passes through untouched", func(t *testing.T) {
		next := &countingHandler{}
		rec := httptest.NewRecorder()
		gate(next).ServeHTTP(rec, requestAs(&auth.User{ID: "u1", Role: "admin"}))

		assert.Equal(t, 1, next.calls)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Empty(t, rec.Header())
	})

	t.Run("second allowed role", func(t *testing.T) {
		next := &countingHandler{}
		gate(next).ServeHTTP(httptest.NewRecorder(), requestAs(&auth.User{ID: "u2", Role: "manager"}))
		assert.Equal(t, 1, next.calls)
	})

	t.Run("role outside the set is forbidden", func(t *testing.T) {
		next := &countingHandler{}
		rec := httptest.NewRecorder()
		gate(next).ServeHTTP(rec, requestAs(&auth.User{ID: "u3", Role: "viewer"}))

		assert.Equal(t, 0, next.calls)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"message":"Forbidden"}`, rec.Body.String())
	})

	t.Run("missing user is unauthorized", func(t *testing.T) {
		next := &countingHandler{}
		rec := httptest.NewRecorder()
		gate(next).ServeHTTP(rec, requestAs(nil))

		assert.Equal(t, 0, next.calls)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())
	})

	t.Run("role match is case sensitive", func(t *testing.T) {
		next := &countingHandler{}
		rec := httptest.NewRecorder()
		gate(next).ServeHTTP(rec, requestAs(&auth.User{ID: "u4", Role: "Admin"}))

		assert.Equal(t, 0, next.calls)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("empty role is not a wildcard", func(t *testing.T) {
		next := &countingHandler{}
		rec := httptest.NewRecorder()
		gate(next).ServeHTTP(rec, requestAs(&auth.User{ID: "u5"}))

		assert.Equal(t, 0, next.calls)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAuthorizeEmptySetForbidsEveryone(t *testing.T) {
	gate := Authorize()
	for _, role := range []string{auth.RoleAdmin, auth.RoleManager, auth.RoleFarmer, auth.RoleViewer, ""} {
		next := &countingHandler{}
		rec := httptest.NewRecorder()
		gate(next).ServeHTTP(rec, requestAs(&auth.User{ID: "u", Role: role}))

		assert.Equal(t, 0, next.calls, role)
		assert.Equal(t, http.StatusForbidden, rec.Code, role)
		assert.JSONEq(t, `{"message":"Forbidden"}`, rec.Body.String(), role)
	}

	rec := httptest.NewRecorder()
	gate(&countingHandler{}).ServeHTTP(rec, requestAs(nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateDecide(t *testing.T) {
	g := NewGate("admin", "manager")

	assert.Equal(t, Allow, g.Decide(&auth.User{Role: "admin"}))
	assert.Equal(t, Forbidden, g.Decide(&auth.User{Role: "viewer"}))
	assert.Equal(t, Unauthenticated, g.Decide(nil))
	assert.Equal(t, "forbidden", Forbidden.String())
	assert.Equal(t, "unauthorized", Unauthenticated.String())
}

func TestGateRolesAreImmutable(t *testing.T) {
	roles := []string{"admin", "manager"}
	g := NewGate(roles...)

	roles[0] = "viewer"
	assert.Equal(t, []string{"admin", "manager"}, g.Roles())
	assert.Equal(t, Forbidden, g.Decide(&auth.User{Role: "viewer"}))

	got := g.Roles()
	got[1] = "viewer"
	assert.Equal(t, []string{"admin", "manager"}, g.Roles())
}
