package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/farm-backend/internal/api/httpx"
	"github.com/baharkarakas/farm-backend/internal/models"
	"github.com/baharkarakas/farm-backend/internal/services"
)

type FarmHandler struct {
	Svc *services.FarmService
}

func NewFarmHandler(svc *services.FarmService) *FarmHandler {
	return &FarmHandler{Svc: svc}
}

type farmReq struct {
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	SizeHectares float64  `json:"size_hectares"`
	Crops        []string `json:"crops"`
}

func (req farmReq) model() models.Farm {
	return models.Farm{Name: req.Name, Location: req.Location, SizeHectares: req.SizeHectares, Crops: req.Crops}
}

func (h *FarmHandler) List(w http.ResponseWriter, r *http.Request) error {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		return err
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		return err
	}
	farms, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		return httpErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, farms)
	return nil
}

func (h *FarmHandler) Get(w http.ResponseWriter, r *http.Request) error {
	f, err := h.Svc.Get(r.Context(), chi.URLParam(r, "farmID"))
	if err != nil {
		return httpErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, f)
	return nil
}

func (h *FarmHandler) Create(w http.ResponseWriter, r *http.Request) error {
	u, err := caller(r)
	if err != nil {
		return err
	}
	var req farmReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}
	f, err := h.Svc.Create(r.Context(), u, req.model())
	if err != nil {
		return httpErr(err)
	}
	httpx.WriteJSON(w, http.StatusCreated, f)
	return nil
}

func (h *FarmHandler) Update(w http.ResponseWriter, r *http.Request) error {
	u, err := caller(r)
	if err != nil {
		return err
	}
	var req farmReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}
	f, err := h.Svc.Update(r.Context(), u, chi.URLParam(r, "farmID"), req.model())
	if err != nil {
		return httpErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, f)
	return nil
}

func (h *FarmHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	u, err := caller(r)
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(r.Context(), u, chi.URLParam(r, "farmID")); err != nil {
		return httpErr(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
