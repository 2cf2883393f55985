package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/farm-backend/internal/api/httpx"
	"github.com/baharkarakas/farm-backend/internal/models"
	"github.com/baharkarakas/farm-backend/internal/services"
)

type PlanHandler struct {
	Svc *services.PlanService
}

func NewPlanHandler(svc *services.PlanService) *PlanHandler {
	return &PlanHandler{Svc: svc}
}

type planReq struct {
	Kind    models.PlanKind `json:"kind"`
	Title   string          `json:"title"`
	Content json.RawMessage `json:"content"`
}

func (req planReq) model() models.Plan {
	return models.Plan{Kind: req.Kind, Title: req.Title, Content: req.Content}
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) error {
	kind := models.PlanKind(r.URL.Query().Get("kind"))
	plans, err := h.Svc.List(r.Context(), chi.URLParam(r, "farmID"), kind)
	if err != nil {
		return httpErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, plans)
	return nil
}

func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) error {
	p, err := h.Svc.Get(r.Context(), chi.URLParam(r, "farmID"), chi.URLParam(r, "planID"))
	if err != nil {
		return httpErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) error {
	u, err := caller(r)
	if err != nil {
		return err
	}
	var req planReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}
	p, err := h.Svc.Create(r.Context(), u, chi.URLParam(r, "farmID"), req.model())
	if err != nil {
		return httpErr(err)
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
	return nil
}

func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) error {
	u, err := caller(r)
	if err != nil {
		return err
	}
	var req planReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}
	p, err := h.Svc.Update(r.Context(), u, chi.URLParam(r, "farmID"), chi.URLParam(r, "planID"), req.model())
	if err != nil {
		return httpErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	u, err := caller(r)
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(r.Context(), u, chi.URLParam(r, "farmID"), chi.URLParam(r, "planID")); err != nil {
		return httpErr(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
