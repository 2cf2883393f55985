package httpx

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/baharkarakas/farm-backend/internal/metrics"
)

const fallbackMessage = "Server Error"

// StatusError pairs an error with the HTTP status it should be rendered with.
type StatusError struct {
	Status int
	Err    error
}

func (e *StatusError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error { return e.Err }

// Status is a message-less error carrying only a status code.
func Status(code int) error { return &StatusError{Status: code} }

func Errorf(code int, format string, args ...any) error {
	return &StatusError{Status: code, Err: fmt.Errorf(format, args...)}
}

func WithStatus(code int, err error) error {
	return &StatusError{Status: code, Err: err}
}

// PanicError carries a recovered panic value. It is logged with the value
// and rendered with the fallback message.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// HandlerFunc is an http handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts h to net/http. Any error h returns is rendered by RenderError.
func Handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := NewResponse(w)
		if err := h(resp, r); err != nil {
			RenderError(resp, r, err)
		}
	}
}

// ResolveStatus picks the status an error is rendered with: an explicit
// StatusError wins, then a status pre-set on a *Response, then 500.
func ResolveStatus(w http.ResponseWriter, err error) int {
	var se *StatusError
	if errors.As(err, &se) && se.Status != 0 {
		return se.Status
	}
	if resp, ok := w.(*Response); ok && resp.Status() != http.StatusOK {
		return resp.Status()
	}
	return http.StatusInternalServerError
}

// RenderError is the terminal sink for request errors. It logs the message and
// writes {"success":false,"message":...}. It must not panic.
func RenderError(w http.ResponseWriter, r *http.Request, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	logged := msg
	var pe *PanicError
	if errors.As(err, &pe) {
		msg = ""
	}
	status := ResolveStatus(w, err)

	slog.Error("request error",
		"err", logged,
		"status", status,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", w.Header().Get("X-Request-Id"),
	)

	if resp, ok := w.(*Response); ok && resp.Written() {
		// headers are gone; nothing left to render
		return
	}
	if msg == "" {
		msg = fallbackMessage
	}
	metrics.ErrorsRendered.WithLabelValues(strconv.Itoa(status)).Inc()
	WriteError(w, status, msg)
}
