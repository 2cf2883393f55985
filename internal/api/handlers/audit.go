package handlers

import (
	"net/http"

	"github.com/baharkarakas/farm-backend/internal/api/httpx"
	"github.com/baharkarakas/farm-backend/internal/services"
)

type AuditHandler struct {
	Svc *services.AuditService
}

func NewAuditHandler(svc *services.AuditService) *AuditHandler {
	return &AuditHandler{Svc: svc}
}

func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) error {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		return err
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		return err
	}
	logs, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		return httpErr(err)
	}
	httpx.WriteJSON(w, http.StatusOK, logs)
	return nil
}
