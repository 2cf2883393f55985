package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/farm-backend/internal/api/handlers"
	"github.com/baharkarakas/farm-backend/internal/api/httpx"
	"github.com/baharkarakas/farm-backend/internal/auth"
	"github.com/baharkarakas/farm-backend/internal/config"
	"github.com/baharkarakas/farm-backend/internal/metrics"
	"github.com/baharkarakas/farm-backend/internal/middleware"
	"github.com/baharkarakas/farm-backend/internal/services"
)

type RouterDeps struct {
	Cfg      config.Config
	FarmSvc  *services.FarmService
	PlanSvc  *services.PlanService
	ChatSvc  *services.ChatService
	AuditSvc *services.AuditService
}

// Role sets per route group.
var (
	anyRole     = []string{auth.RoleAdmin, auth.RoleManager, auth.RoleFarmer, auth.RoleViewer}
	farmEditors = []string{auth.RoleAdmin, auth.RoleManager, auth.RoleFarmer}
	managers    = []string{auth.RoleAdmin, auth.RoleManager}
	admins      = []string{auth.RoleAdmin}
)

func NewRouter(d RouterDeps) http.Handler {
	farms := handlers.NewFarmHandler(d.FarmSvc)
	plans := handlers.NewPlanHandler(d.PlanSvc)
	chat := handlers.NewChatHandler(d.ChatSvc)
	audit := handlers.NewAuditHandler(d.AuditSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.HTTPMetrics, middleware.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.Cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.NotFound(httpx.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return httpx.Errorf(http.StatusNotFound, "route not found")
	}))
	r.MethodNotAllowed(httpx.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return httpx.Errorf(http.StatusMethodNotAllowed, "method not allowed")
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Identity(d.Cfg.UserIDHeader, d.Cfg.RoleHeader))

		// ---------- farms ----------
		r.Route("/farms", func(r chi.Router) {
			r.With(middleware.Authorize(anyRole...)).Get("/", httpx.Handle(farms.List))
			r.With(middleware.Authorize(anyRole...)).Get("/{farmID}", httpx.Handle(farms.Get))
			r.With(middleware.Authorize(farmEditors...)).Post("/", httpx.Handle(farms.Create))
			r.With(middleware.Authorize(farmEditors...)).Put("/{farmID}", httpx.Handle(farms.Update))
			r.With(middleware.Authorize(managers...)).Delete("/{farmID}", httpx.Handle(farms.Delete))

			// ---------- plans ----------
			r.Route("/{farmID}/plans", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.Authorize(anyRole...))
					r.Get("/", httpx.Handle(plans.List))
					r.Get("/{planID}", httpx.Handle(plans.Get))
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.Authorize(managers...))
					r.Post("/", httpx.Handle(plans.Create))
					r.Put("/{planID}", httpx.Handle(plans.Update))
					r.Delete("/{planID}", httpx.Handle(plans.Delete))
				})
			})
		})

		// ---------- chat ----------
		r.Route("/chat/{room}/messages", func(r chi.Router) {
			r.With(middleware.Authorize(anyRole...)).Get("/", httpx.Handle(chat.History))
			r.With(middleware.Authorize(farmEditors...)).Post("/", httpx.Handle(chat.Post))
		})

		// ---------- audit ----------
		r.With(middleware.Authorize(admins...)).Get("/audit", httpx.Handle(audit.List))
	})

	return r
}
