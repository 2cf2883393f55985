package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/farm-backend/internal/api/httpx"
	"github.com/baharkarakas/farm-backend/internal/services"
)

type ChatHandler struct {
	Svc *services.ChatService
}

func NewChatHandler(svc *services.ChatService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) error {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		return err
	}
	msgs, err := h.Svc.History(r.Context(), chi.URLParam(r, "room"), r.URL.Query().Get("before"), limit)
	if err != nil {
		return httpErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, msgs)
	return nil
}

func (h *ChatHandler) Post(w http.ResponseWriter, r *http.Request) error {
	u, err := caller(r)
	if err != nil {
		return err
	}
	var req struct {
		Body string `json:"body"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}
	m, err := h.Svc.Post(r.Context(), u, chi.URLParam(r, "room"), req.Body)
	if err != nil {
		return httpErr(err)
	}
	httpx.WriteJSON(w, http.StatusCreated, m)
	return nil
}
