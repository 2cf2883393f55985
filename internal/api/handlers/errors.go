package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/baharkarakas/farm-backend/internal/api/httpx"
	"github.com/baharkarakas/farm-backend/internal/auth"
	repo "github.com/baharkarakas/farm-backend/internal/repository"
	"github.com/baharkarakas/farm-backend/internal/validate"
)

// httpErr attaches a status to the errors services are known to return.
// Anything else goes to the normalizer as is and becomes a 500.
func httpErr(err error) error {
	var verrs validate.Errs
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return httpx.WithStatus(http.StatusNotFound, err)
	case errors.As(err, &verrs):
		return httpx.WithStatus(http.StatusBadRequest, err)
	default:
		return err
	}
}

// caller returns the user the gate admitted.
func caller(r *http.Request) (auth.User, error) {
	u, ok := auth.UserFrom(r.Context())
	if !ok {
		return auth.User{}, httpx.Errorf(http.StatusUnauthorized, "Unauthorized")
	}
	return *u, nil
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, httpx.Errorf(http.StatusBadRequest, "%s must be an integer", key)
	}
	return n, nil
}
