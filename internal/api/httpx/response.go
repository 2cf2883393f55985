package httpx

import "net/http"

// Response defers the status line until the first body write, so code running
// before a failure can choose the status the error is later rendered with.
type Response struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

// NewResponse wraps w. An existing *Response is returned as is.
func NewResponse(w http.ResponseWriter) *Response {
	if r, ok := w.(*Response); ok {
		return r
	}
	return &Response{ResponseWriter: w}
}

// Status is the pending or committed status, http.StatusOK when nothing was set.
func (r *Response) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// Written reports whether the status line has gone out.
func (r *Response) Written() bool { return r.wroteHeader }

func (r *Response) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.status = code
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *Response) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(r.Status())
	}
	return r.ResponseWriter.Write(b)
}

func (r *Response) Unwrap() http.ResponseWriter { return r.ResponseWriter }

// SetStatus pre-sets the status of an uncommitted *Response without writing it.
// Any other writer gets the status committed immediately.
func SetStatus(w http.ResponseWriter, code int) {
	if r, ok := w.(*Response); ok && !r.wroteHeader {
		r.status = code
		return
	}
	w.WriteHeader(code)
}
