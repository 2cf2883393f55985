package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponse(t *testing.T) {
	t.Run("defaults to 200 and uncommitted", func(t *testing.T) {
		resp := NewResponse(httptest.NewRecorder())
		assert.Equal(t, http.StatusOK, resp.Status())
		assert.False(t, resp.Written())
	})

	t.Run("pre-set status is used by the first write", func(t *testing.T) {
		rec := httptest.NewRecorder()
		resp := NewResponse(rec)
		SetStatus(resp, http.StatusAccepted)
		assert.False(t, resp.Written())

		_, _ = resp.Write([]byte("queued"))
		assert.True(t, resp.Written())
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "queued", rec.Body.String())
	})

	t.Run("header is committed once", func(t *testing.T) {
		rec := httptest.NewRecorder()
		resp := NewResponse(rec)
		resp.WriteHeader(http.StatusCreated)
		resp.WriteHeader(http.StatusInternalServerError)
		SetStatus(resp, http.StatusNotFound)

		assert.Equal(t, http.StatusCreated, resp.Status())
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("wrapping twice returns the same response", func(t *testing.T) {
		resp := NewResponse(httptest.NewRecorder())
		assert.Same(t, resp, NewResponse(resp))
	})

	t.Run("set status on a plain writer commits", func(t *testing.T) {
		rec := httptest.NewRecorder()
		SetStatus(rec, http.StatusNoContent)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Body = http.NoBody

	var v struct{ Name string }
	err := DecodeJSON(req, &v)
	assert.Equal(t, http.StatusBadRequest, ResolveStatus(httptest.NewRecorder(), err))
}
