package httpx

import (
	"encoding/json"
	"net/http"
)

// Message is the body written by gates: {"message": "..."}.
type Message struct {
	Message string `json:"message"`
}

// ErrorBody is the envelope every unhandled error is rendered into.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Message{Message: msg})
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorBody{Success: false, Message: msg})
}

// DecodeJSON reads the request body into v. Malformed bodies become a 400.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return Errorf(http.StatusBadRequest, "invalid JSON body")
	}
	return nil
}
